package crossing

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/travigo/bridgetimes/pkg/ldbws"
	"github.com/travigo/bridgetimes/pkg/stations"

	_ "time/tzdata"
)

const testStationsJSON = `[
	{"Station": "S1", "Station Name": "South One", "Distance": 5, "Direction": "S"},
	{"Station": "S2", "Station Name": "South Two", "Distance": 2, "Direction": "S"},
	{"Station": "N1", "Station Name": "North One", "Distance": 3, "Direction": "N"},
	{"Station": "N2", "Station Name": "North Two", "Distance": 8, "Direction": "N"}
]`

func testTable(t *testing.T) *stations.Table {
	table, err := stations.ParseJSON(strings.NewReader(testStationsJSON))
	require.NoError(t, err)

	return table
}

func london(t *testing.T) *time.Location {
	location, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	return location
}

func testConfig(t *testing.T, now time.Time) Config {
	return Config{
		Location:      london(t),
		StaleAfter:    DefaultStaleAfter,
		TomorrowAfter: DefaultTomorrowAfter,
		Now:           func() time.Time { return now },
	}
}

type fakeSource struct {
	boards  map[string][]ldbws.Train
	details map[string][]ldbws.CallingPoint

	boardErr    error
	detailCalls []string
}

func (f *fakeSource) Departures(ctx context.Context, origin string, destination string) ([]ldbws.Train, error) {
	if f.boardErr != nil {
		return nil, f.boardErr
	}

	return f.boards[fmt.Sprintf("%s-%s", origin, destination)], nil
}

func (f *fakeSource) ServiceDetail(ctx context.Context, serviceID string) ([]ldbws.CallingPoint, error) {
	f.detailCalls = append(f.detailCalls, serviceID)

	callingPoints, ok := f.details[serviceID]
	if !ok {
		return nil, &ldbws.FetchError{Operation: "GetServiceDetails", Err: fmt.Errorf("no details for %s", serviceID)}
	}

	return callingPoints, nil
}

func futureTrain(id string, origin string, scheduled string, estimated string, callingPoints ...ldbws.CallingPoint) ldbws.FutureTrain {
	return ldbws.FutureTrain{
		Service: ldbws.Service{
			ID:          id,
			Origin:      origin,
			Scheduled:   scheduled,
			Estimated:   estimated,
			Operator:    "Northern",
			Destination: "Somewhere",
		},
		CallingPoints: callingPoints,
	}
}

func due(crs string, scheduled string, estimated string) ldbws.CallingPoint {
	return ldbws.CallingPoint{Crs: crs, Scheduled: scheduled, Estimated: estimated}
}

func arrived(crs string, scheduled string, actual string) ldbws.CallingPoint {
	return ldbws.CallingPoint{Crs: crs, Scheduled: scheduled, Actual: actual}
}
