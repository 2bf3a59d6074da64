package ldbws

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDepartureBoard(t *testing.T) {
	trains, err := ParseDepartureBoard(strings.NewReader(departureBoardFixture), "XXX")
	require.NoError(t, err)
	require.Len(t, trains, 3)

	future, ok := trains[0].(FutureTrain)
	require.True(t, ok, "expected first service to be a FutureTrain, got %T", trains[0])
	assert.Equal(t, "future-1", future.ServiceID())
	assert.Equal(t, "SOA", future.Origin)
	assert.Equal(t, "10:00", future.Scheduled)
	assert.Equal(t, StatusOnTime, future.Estimated)
	assert.Equal(t, "London North Eastern Railway", future.Operator)
	assert.Equal(t, "Far North", future.Destination)
	require.Len(t, future.CallingPoints, 3)
	assert.Equal(t, CallingPoint{Crs: "NON", Name: "North One", Scheduled: "10:20", Estimated: "10:23"}, future.CallingPoints[1])
	assert.True(t, future.CallingPoints[2].Cancelled)

	past, ok := trains[1].(PastTrain)
	require.True(t, ok, "expected second service to be a PastTrain, got %T", trains[1])
	assert.Equal(t, "past-1", past.ServiceID())
	assert.Equal(t, "09:34", past.Estimated)
	assert.Equal(t, "North Two", past.Destination)

	invalid, ok := trains[2].(InvalidTrain)
	require.True(t, ok, "expected third service to be an InvalidTrain, got %T", trains[2])
	assert.Equal(t, "broken-1", invalid.ServiceID())
	assert.ErrorIs(t, invalid.Err, ErrMalformedService)
}

func TestParseDepartureBoardWithoutServices(t *testing.T) {
	trains, err := ParseDepartureBoard(strings.NewReader(emptyDepartureBoardFixture), "SOA")
	require.NoError(t, err)
	assert.Empty(t, trains)
}

func TestParseDepartureBoardFault(t *testing.T) {
	_, err := ParseDepartureBoard(strings.NewReader(faultFixture), "SOA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid crs code supplied")
}

func TestParseDepartureBoardWrongEnvelope(t *testing.T) {
	_, err := ParseDepartureBoard(strings.NewReader(serviceDetailsFixture), "SOA")
	assert.Error(t, err)

	_, err = ParseDepartureBoard(strings.NewReader("<not-xml"), "SOA")
	assert.Error(t, err)
}

func TestParseServiceDetails(t *testing.T) {
	callingPoints, err := ParseServiceDetails(strings.NewReader(serviceDetailsFixture))
	require.NoError(t, err)
	require.Len(t, callingPoints, 2)

	assert.True(t, callingPoints[0].Arrived())
	assert.Equal(t, "09:43", callingPoints[0].Actual)
	assert.False(t, callingPoints[1].Arrived())
	assert.Equal(t, "NON", callingPoints[1].Crs)
}

func TestCallingPointWithoutCrsIsMalformed(t *testing.T) {
	train := newTrain("SOA", nationalRailwayService{
		ServiceID: "abc",
		Scheduled: "10:00",
		Estimated: StatusOnTime,
		SubsequentCallingPoints: &nationalRailwayCallingPointLists{
			Lists: []nationalRailwayCallingPointList{
				{CallingPoints: []nationalRailwayCallingPoint{{Name: "Nowhere", Scheduled: "10:10", Estimated: StatusOnTime}}},
			},
		},
	})

	invalid, ok := train.(InvalidTrain)
	require.True(t, ok)
	assert.Equal(t, "abc", invalid.ID)
	assert.ErrorIs(t, invalid.Err, ErrMalformedService)
}

func TestServiceWithoutIDIsMalformed(t *testing.T) {
	train := newTrain("SOA", nationalRailwayService{Scheduled: "10:00", Estimated: StatusOnTime})

	invalid, ok := train.(InvalidTrain)
	require.True(t, ok)
	assert.Empty(t, invalid.ServiceID())
}
