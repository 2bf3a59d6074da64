package crossing

import (
	"time"

	"github.com/travigo/bridgetimes/pkg/transforms"
	"github.com/travigo/bridgetimes/pkg/util"
)

type Direction string

const (
	DirectionNorthbound Direction = "Northbound"
	DirectionSouthbound Direction = "Southbound"
)

// Record is one row of the bridge board
type Record struct {
	BridgeTime    string    `json:"Bridge Time" groups:"basic,detailed"`
	Operator      string    `json:"Operator" groups:"basic,detailed"`
	Destination   string    `json:"Destination" groups:"basic,detailed"`
	LastStation   string    `json:"Last Station" groups:"basic,detailed"`
	DepartureTime string    `json:"Departure Time" groups:"basic,detailed"`
	OnTime        string    `json:"On Time?" groups:"basic,detailed"`
	Direction     Direction `json:"Direction" groups:"basic,detailed"`

	ServiceID string    `json:"Service ID" groups:"detailed"`
	Crossing  time.Time `json:"Datetime" groups:"detailed"`
}

// Stale reports whether the crossing is already too far in the past to show
func (r *Record) Stale(now time.Time, staleAfter time.Duration) bool {
	return !r.Crossing.Add(staleAfter).After(now)
}

func newRecord(serviceID string, operator string, destination string, direction Direction, lastStationName string, lastStop StopEntry, crossingInstant time.Time) *Record {
	record := &Record{
		BridgeTime:    crossingInstant.Format(util.TimeOfDayLayout),
		Operator:      operator,
		Destination:   destination,
		LastStation:   lastStationName,
		DepartureTime: lastStop.Time,
		OnTime:        string(lastStop.Status),
		Direction:     direction,

		ServiceID: serviceID,
		Crossing:  crossingInstant,
	}

	transforms.Transform(record)

	return record
}
