package crossing

import (
	"github.com/travigo/bridgetimes/pkg/stations"
)

// Bracket is the called-at station nearest the bridge on one side
type Bracket struct {
	Station  string
	Distance float64
	Stop     StopEntry
}

// ResolveBracket walks one side's stations outwards from the bridge and returns the first the train calls at
func ResolveBracket(order []string, stopList StopList, table *stations.Table) (Bracket, error) {
	for _, station := range order {
		if stop, ok := stopList[station]; ok {
			return Bracket{
				Station:  station,
				Distance: table.Distance(station),
				Stop:     stop,
			}, nil
		}
	}

	return Bracket{}, ErrStationNotCalled
}
