package cachedresults

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/bridgetimes/pkg/crossing"
)

type countingSource struct {
	calls   int
	records []crossing.Record
	err     error
}

func (c *countingSource) ComputeCrossings(ctx context.Context) ([]crossing.Record, error) {
	c.calls++

	return c.records, c.err
}

func newTestBoard(t *testing.T, source BoardSource) (*Board, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	return NewBoard(source, client, 30*time.Second), server
}

func TestBoardServesFromCache(t *testing.T) {
	crossingInstant := time.Date(2026, 10, 18, 10, 12, 30, 0, time.UTC)
	source := &countingSource{
		records: []crossing.Record{
			{BridgeTime: "10:12", Operator: "LNER", Direction: crossing.DirectionNorthbound, ServiceID: "a", Crossing: crossingInstant},
		},
	}

	board, _ := newTestBoard(t, source)

	first, err := board.ComputeCrossings(context.Background())
	require.NoError(t, err)

	second, err := board.ComputeCrossings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].BridgeTime, second[0].BridgeTime)
	assert.True(t, crossingInstant.Equal(second[0].Crossing))
}

func TestBoardRecomputesAfterExpiry(t *testing.T) {
	source := &countingSource{records: []crossing.Record{{BridgeTime: "10:12"}}}

	board, server := newTestBoard(t, source)

	_, err := board.ComputeCrossings(context.Background())
	require.NoError(t, err)

	server.FastForward(time.Minute)

	_, err = board.ComputeCrossings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
}

func TestBoardDoesNotCacheFailures(t *testing.T) {
	source := &countingSource{err: errors.New("upstream down")}

	board, _ := newTestBoard(t, source)

	_, err := board.ComputeCrossings(context.Background())
	assert.Error(t, err)

	source.err = nil
	source.records = []crossing.Record{{BridgeTime: "11:00"}}

	records, err := board.ComputeCrossings(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, source.calls)
}
