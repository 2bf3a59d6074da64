package api

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/bridgetimes/pkg/board"
	"github.com/urfave/cli/v2"
)

// defaultListen keeps the privileged port for deployments that run as root
func defaultListen() string {
	if os.Geteuid() == 0 {
		return ":80"
	}

	return ":8080"
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the bridge times web page and API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: defaultListen(),
						Usage: "listen target for the web server",
					},
				}, board.Flags()...),
				Action: func(c *cli.Context) error {
					setup, err := board.Setup(c, true)
					if err != nil {
						return err
					}

					log.Info().
						Str("listen", c.String("listen")).
						Int("stations", setup.Stations.Len()).
						Bool("cached", setup.Cached).
						Msg("Starting web api")

					return SetupServer(c.String("listen"), setup.Board, setup.Metrics)
				},
			},
		},
	}
}
