package stations

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var ErrEmptyTable = errors.New("station table has no usable stations on one side of the bridge")

type Side string

const (
	SideSouth Side = "S"
	SideNorth Side = "N"
)

func (s Side) String() string {
	switch s {
	case SideSouth:
		return "South"
	case SideNorth:
		return "North"
	default:
		return string(s)
	}
}

type StationRef struct {
	Code     string
	Name     string
	Distance float64
	Side     Side
}

func (s StationRef) validate() error {
	if s.Code == "" {
		return errors.New("missing station code")
	}
	if s.Side != SideSouth && s.Side != SideNorth {
		return fmt.Errorf("unknown direction %q", string(s.Side))
	}
	if math.IsNaN(s.Distance) || math.IsInf(s.Distance, 0) || s.Distance < 0 {
		return fmt.Errorf("invalid distance %v", s.Distance)
	}

	return nil
}

// Table is the read-only station reference for one bridge.
// South and North hold station codes ordered nearest to the bridge first.
type Table struct {
	stations map[string]StationRef

	South []string
	North []string
}

// NewTable builds a Table from rows listed south to north along the line.
// Rows that fail validation, or repeat an earlier code, are skipped.
func NewTable(rows []StationRef) (*Table, error) {
	table := &Table{
		stations: map[string]StationRef{},
	}

	for i, row := range rows {
		if err := row.validate(); err != nil {
			log.Warn().Err(err).Int("row", i).Str("station", row.Code).Msg("Skipping station reference row")
			continue
		}
		if _, exists := table.stations[row.Code]; exists {
			log.Warn().Int("row", i).Str("station", row.Code).Msg("Skipping duplicate station reference row")
			continue
		}

		table.stations[row.Code] = row

		switch row.Side {
		case SideSouth:
			table.South = append(table.South, row.Code)
		case SideNorth:
			table.North = append(table.North, row.Code)
		}
	}

	// The file runs south to north so the southern list starts furthest from the bridge
	for i, j := 0, len(table.South)-1; i < j; i, j = i+1, j-1 {
		table.South[i], table.South[j] = table.South[j], table.South[i]
	}

	// Distance decides the order, file order only breaks ties
	table.sortByDistance(table.South)
	table.sortByDistance(table.North)

	if len(table.South) == 0 || len(table.North) == 0 {
		return nil, ErrEmptyTable
	}

	return table, nil
}

func (t *Table) sortByDistance(codes []string) {
	slices.SortStableFunc(codes, func(a string, b string) int {
		return cmp.Compare(t.stations[a].Distance, t.stations[b].Distance)
	})
}

func (t *Table) Station(code string) (StationRef, bool) {
	station, ok := t.stations[code]
	return station, ok
}

func (t *Table) Name(code string) string {
	return t.stations[code].Name
}

func (t *Table) Distance(code string) float64 {
	return t.stations[code].Distance
}

// SouthEnd is the southern board origin, the station furthest south of the bridge
func (t *Table) SouthEnd() string {
	return t.South[len(t.South)-1]
}

// NorthEnd is the northern board origin, the station furthest north of the bridge
func (t *Table) NorthEnd() string {
	return t.North[len(t.North)-1]
}

func (t *Table) Len() int {
	return len(t.stations)
}

// Ordered returns every station from the southern end of the line to the northern end
func (t *Table) Ordered() []StationRef {
	ordered := make([]StationRef, 0, len(t.stations))

	for i := len(t.South) - 1; i >= 0; i-- {
		ordered = append(ordered, t.stations[t.South[i]])
	}
	for _, code := range t.North {
		ordered = append(ordered, t.stations[code])
	}

	return ordered
}
