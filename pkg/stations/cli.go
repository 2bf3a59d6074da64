package stations

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/travigo/bridgetimes/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "Inspect the station reference",
		Subcommands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "load a station reference and print it in bridge order",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "stations",
						Value: util.GetEnvironmentVariable("BRIDGETIMES_STATIONS_FILE", "stations.json"),
						Usage: "station reference file, JSON or CSV",
					},
				},
				Action: func(c *cli.Context) error {
					table, err := LoadFile(c.String("stations"))
					if err != nil {
						return err
					}

					writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(writer, "Side\tCode\tName\tDistance")
					for _, station := range table.Ordered() {
						fmt.Fprintf(writer, "%s\t%s\t%s\t%g\n", station.Side, station.Code, station.Name, station.Distance)
					}
					fmt.Fprintf(writer, "\nBoards run %s <-> %s\n", table.SouthEnd(), table.NorthEnd())

					return writer.Flush()
				},
			},
		},
	}
}
