package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/bridgetimes/pkg/crossing"
	"github.com/travigo/bridgetimes/pkg/ldbws"
	"github.com/travigo/bridgetimes/pkg/util"
)

const (
	defaultStationsFile   = "stations.json"
	defaultResultCacheTTL = 30 * time.Second
)

// Config is everything bridgetimes reads from the environment
type Config struct {
	LDBWSToken      string
	LDBWSEndpoint   string
	LDBWSTimeout    time.Duration
	BoardRows       int
	ReplayDirectory string

	StationsFile  string
	OperatorRules string

	Crossing crossing.Config

	RedisAddress   string
	ResultCacheTTL time.Duration
}

// LoadEnv reads a .env file into the environment if one exists
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded .env file")
	}
}

func Load() (*Config, error) {
	env := util.GetEnvironmentVariables()

	config := &Config{
		LDBWSToken:      env["BRIDGETIMES_LDBWS_TOKEN"],
		LDBWSEndpoint:   util.GetEnvironmentVariable("BRIDGETIMES_LDBWS_ENDPOINT", ldbws.DefaultEndpoint),
		LDBWSTimeout:    ldbws.DefaultTimeout,
		BoardRows:       ldbws.DefaultBoardRows,
		ReplayDirectory: env["BRIDGETIMES_REPLAY_DIRECTORY"],

		StationsFile:  util.GetEnvironmentVariable("BRIDGETIMES_STATIONS_FILE", defaultStationsFile),
		OperatorRules: env["BRIDGETIMES_OPERATOR_RULES"],

		Crossing: crossing.DefaultConfig(),

		RedisAddress:   env["BRIDGETIMES_REDIS_ADDRESS"],
		ResultCacheTTL: defaultResultCacheTTL,
	}

	if env["BRIDGETIMES_BOARD_ROWS"] != "" {
		rows, err := strconv.Atoi(env["BRIDGETIMES_BOARD_ROWS"])
		if err != nil || rows <= 0 {
			return nil, fmt.Errorf("BRIDGETIMES_BOARD_ROWS must be a positive integer, got %q", env["BRIDGETIMES_BOARD_ROWS"])
		}
		config.BoardRows = rows
	}

	if timezone := env["BRIDGETIMES_TIMEZONE"]; timezone != "" {
		location, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("BRIDGETIMES_TIMEZONE: %w", err)
		}
		config.Crossing.Location = location
	}

	durations := []struct {
		key    string
		target *time.Duration
	}{
		{key: "BRIDGETIMES_LDBWS_TIMEOUT", target: &config.LDBWSTimeout},
		{key: "BRIDGETIMES_STALE_AFTER", target: &config.Crossing.StaleAfter},
		{key: "BRIDGETIMES_TOMORROW_AFTER", target: &config.Crossing.TomorrowAfter},
		{key: "BRIDGETIMES_RESULT_CACHE_TTL", target: &config.ResultCacheTTL},
	}

	for _, duration := range durations {
		if env[duration.key] == "" {
			continue
		}

		parsed, err := ParseDuration(env[duration.key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", duration.key, err)
		}
		*duration.target = parsed
	}

	return config, nil
}

// ParseDuration converts an ISO8601 duration such as PT5M into a time.Duration.
// Calendar parts are measured from the Unix epoch so a day is always 24 hours.
func ParseDuration(value string) (time.Duration, error) {
	duration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}

	reference := time.Unix(0, 0).UTC()

	return duration.Shift(reference).Sub(reference), nil
}
