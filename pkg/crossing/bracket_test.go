package crossing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/bridgetimes/pkg/stations"
)

func TestResolveBracketPicksNearestCalledStation(t *testing.T) {
	table := testTable(t)

	stopList := StopList{
		"S1": {Station: "S1", Time: "10:00", Status: StatusDueOnTime},
		"N2": {Station: "N2", Time: "10:30", Status: StatusDueOnTime},
		"N1": {Station: "N1", Time: "10:20", Status: StatusDueLate},
	}

	south, err := ResolveBracket(table.South, stopList, table)
	require.NoError(t, err)
	assert.Equal(t, "S1", south.Station)
	assert.Equal(t, 5.0, south.Distance)
	assert.Equal(t, "10:00", south.Stop.Time)

	north, err := ResolveBracket(table.North, stopList, table)
	require.NoError(t, err)
	assert.Equal(t, "N1", north.Station)
	assert.Equal(t, 3.0, north.Distance)
	assert.Equal(t, StatusDueLate, north.Stop.Status)
}

func TestResolveBracketNotFound(t *testing.T) {
	table := testTable(t)

	stopList := StopList{
		"S1": {Station: "S1", Time: "10:00", Status: StatusDueOnTime},
		"ZZ": {Station: "ZZ", Time: "10:10", Status: StatusDueOnTime},
	}

	_, err := ResolveBracket(table.North, stopList, table)
	assert.ErrorIs(t, err, ErrStationNotCalled)
}

func TestResolveBracketUsesDistanceNotFileOrder(t *testing.T) {
	table, err := stations.ParseJSON(strings.NewReader(`[
		{"Station": "S1", "Station Name": "South One", "Distance": 5, "Direction": "S"},
		{"Station": "N2", "Station Name": "North Two", "Distance": 8, "Direction": "N"},
		{"Station": "N1", "Station Name": "North One", "Distance": 3, "Direction": "N"}
	]`))
	require.NoError(t, err)

	stopList := StopList{
		"S1": {Station: "S1", Time: "10:00", Status: StatusDueOnTime},
		"N1": {Station: "N1", Time: "10:20", Status: StatusDueOnTime},
		"N2": {Station: "N2", Time: "10:30", Status: StatusDueOnTime},
	}

	north, err := ResolveBracket(table.North, stopList, table)
	require.NoError(t, err)
	assert.Equal(t, "N1", north.Station)
	assert.Equal(t, 3.0, north.Distance)
}
