package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/bridgetimes/pkg/api"
	"github.com/travigo/bridgetimes/pkg/board"
	"github.com/travigo/bridgetimes/pkg/config"
	"github.com/travigo/bridgetimes/pkg/stations"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	config.LoadEnv()

	if os.Getenv("BRIDGETIMES_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("BRIDGETIMES_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "bridgetimes",
		Description: "Estimates when trains cross the bridge from live departure boards",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			board.RegisterCLI(),
			stations.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
