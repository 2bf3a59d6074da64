package board

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/travigo/bridgetimes/pkg/cachedresults"
	"github.com/travigo/bridgetimes/pkg/config"
	"github.com/travigo/bridgetimes/pkg/crossing"
	"github.com/travigo/bridgetimes/pkg/ldbws"
	"github.com/travigo/bridgetimes/pkg/metrics"
	"github.com/travigo/bridgetimes/pkg/redis_client"
	"github.com/travigo/bridgetimes/pkg/stations"
	"github.com/travigo/bridgetimes/pkg/transforms"
)

var ErrMissingToken = errors.New("BRIDGETIMES_LDBWS_TOKEN must be set unless replaying saved responses")

// Wiring is a ready to use bridge board and the pieces it was built from
type Wiring struct {
	Config   *config.Config
	Stations *stations.Table
	Engine   *crossing.Engine
	Metrics  *metrics.Collector

	// Board is the engine, behind the redis result cache when one is configured
	Board  cachedresults.BoardSource
	Cached bool
}

func New(cfg *config.Config, allowCache bool) (*Wiring, error) {
	table, err := stations.LoadFile(cfg.StationsFile)
	if err != nil {
		return nil, err
	}

	transforms.SetupClient()
	if cfg.OperatorRules != "" {
		if err := transforms.LoadFile(cfg.OperatorRules); err != nil {
			return nil, err
		}
	}

	source, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	collector := metrics.NewCollector()

	engine := crossing.NewEngine(source, table, cfg.Crossing)
	engine.Metrics = collector

	wiring := &Wiring{
		Config:   cfg,
		Stations: table,
		Engine:   engine,
		Metrics:  collector,
		Board:    engine,
	}

	if allowCache && cfg.RedisAddress != "" {
		if err := redis_client.Connect(); err != nil {
			return nil, err
		}

		wiring.Board = cachedresults.NewBoard(engine, redis_client.Client, cfg.ResultCacheTTL)
		wiring.Cached = true
	}

	return wiring, nil
}

func newSource(cfg *config.Config) (crossing.ScheduleSource, error) {
	if cfg.ReplayDirectory != "" {
		log.Info().Str("directory", cfg.ReplayDirectory).Msg("Replaying saved departure boards")

		return ldbws.ReplaySource{Directory: cfg.ReplayDirectory}, nil
	}

	if cfg.LDBWSToken == "" {
		return nil, ErrMissingToken
	}

	client := ldbws.NewClient(cfg.LDBWSEndpoint, cfg.LDBWSToken, cfg.LDBWSTimeout)
	client.NumRows = cfg.BoardRows

	return client, nil
}
