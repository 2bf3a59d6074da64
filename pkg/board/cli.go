package board

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/travigo/bridgetimes/pkg/config"
	"github.com/travigo/bridgetimes/pkg/crossing"
	"github.com/urfave/cli/v2"
)

// Flags are the overrides shared by every command that builds a board
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "stations",
			Usage: "station reference file, JSON or CSV",
		},
		&cli.StringFlag{
			Name:  "operator-rules",
			Usage: "YAML file of extra record transforms",
		},
		&cli.StringFlag{
			Name:  "replay",
			Usage: "directory of saved LDBWS responses to use instead of the live service",
		},
	}
}

// Setup loads the environment config, applies any flag overrides and builds the board
func Setup(c *cli.Context, allowCache bool) (*Wiring, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if c.IsSet("stations") {
		cfg.StationsFile = c.String("stations")
	}
	if c.IsSet("operator-rules") {
		cfg.OperatorRules = c.String("operator-rules")
	}
	if c.IsSet("replay") {
		cfg.ReplayDirectory = c.String("replay")
	}

	return New(cfg, allowCache)
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "crossings",
		Usage: "Print the current bridge crossings and exit",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the records as JSON",
			},
			&cli.BoolFlag{
				Name:  "detailed",
				Usage: "include service ids and full timestamps in JSON output",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "dump the records in full",
			},
		}, Flags()...),
		Action: func(c *cli.Context) error {
			wiring, err := Setup(c, false)
			if err != nil {
				return err
			}

			records, err := wiring.Board.ComputeCrossings(c.Context)
			if err != nil {
				return err
			}

			switch {
			case c.Bool("debug"):
				pretty.Println(records)
				return nil
			case c.Bool("json"):
				return printJSON(records, c.Bool("detailed"))
			default:
				return printTable(records)
			}
		},
	}
}

func printJSON(records []crossing.Record, detailed bool) error {
	groups := []string{"basic"}
	if detailed {
		groups = append(groups, "detailed")
	}

	var reduced interface{} = []interface{}{}
	if len(records) > 0 {
		var err error
		reduced, err = sheriff.Marshal(&sheriff.Options{Groups: groups}, records)
		if err != nil {
			return err
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(reduced)
}

func printTable(records []crossing.Record) error {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "Bridge Time\tDirection\tOperator\tDestination\tLast Station\tDeparture Time\tOn Time?")
	for _, record := range records {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			record.BridgeTime, record.Direction, record.Operator, record.Destination,
			record.LastStation, record.DepartureTime, record.OnTime)
	}

	return writer.Flush()
}
