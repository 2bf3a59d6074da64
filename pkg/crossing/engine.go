package crossing

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/bridgetimes/pkg/ldbws"
	"github.com/travigo/bridgetimes/pkg/metrics"
	"github.com/travigo/bridgetimes/pkg/stations"
	"golang.org/x/exp/slices"
)

type ScheduleSource interface {
	DetailFetcher

	Departures(ctx context.Context, origin string, destination string) ([]ldbws.Train, error)
}

type SkipReason string

const (
	SkipCancelled SkipReason = "cancelled"
	SkipStale     SkipReason = "stale"
	SkipDuplicate SkipReason = "duplicate"
	SkipError     SkipReason = "error"
)

// Outcome is the result of running one train through the pipeline: either a Record or the reason there isn't one
type Outcome struct {
	Record *Record
	Skip   SkipReason
}

type Engine struct {
	Source   ScheduleSource
	Stations *stations.Table
	Config   Config
	Metrics  *metrics.Collector
}

func NewEngine(source ScheduleSource, table *stations.Table, config Config) *Engine {
	return &Engine{
		Source:   source,
		Stations: table,
		Config:   config,
	}
}

// ComputeCrossings builds the bridge board for both directions, ordered by crossing time.
// A failure of the schedule source fails the whole board, a failure of a single train does not.
func (e *Engine) ComputeCrossings(ctx context.Context) ([]Record, error) {
	start := time.Now()
	defer e.Metrics.ObserveCompute(start)

	now := e.Config.now()

	var records []Record

	for _, direction := range []Direction{DirectionNorthbound, DirectionSouthbound} {
		origin, destination := e.boardEnds(direction)

		fetchStart := time.Now()
		trains, err := e.Source.Departures(ctx, origin, destination)
		e.Metrics.ObserveUpstream("GetDepBoardWithDetails", fetchStart, err)
		if err != nil {
			return nil, err
		}

		records = append(records, e.Direction(ctx, direction, trains, now)...)
	}

	slices.SortStableFunc(records, func(a Record, b Record) int {
		return a.Crossing.Compare(b.Crossing)
	})

	return records, nil
}

// Direction runs every train seen travelling one way through the pipeline.
// A service seen twice, once in each board window, only produces a record for its first sighting.
func (e *Engine) Direction(ctx context.Context, direction Direction, trains []ldbws.Train, now time.Time) []Record {
	seen := map[string]bool{}
	var records []Record

	for _, train := range trains {
		e.Metrics.TrainProcessed(string(direction))

		outcome, err := e.processTrain(ctx, direction, train, now, seen)
		if err != nil {
			log.Error().Err(err).Str("service", train.ServiceID()).Str("direction", string(direction)).Msg("Skipping train")
			e.Metrics.TrainSkipped(string(direction), string(SkipError))
			continue
		}

		seen[train.ServiceID()] = true

		if outcome.Record == nil {
			log.Debug().Str("service", train.ServiceID()).Str("reason", string(outcome.Skip)).Msg("No crossing for train")
			e.Metrics.TrainSkipped(string(direction), string(outcome.Skip))
			continue
		}

		records = append(records, *outcome.Record)
		e.Metrics.RecordEmitted(string(direction))
	}

	return records
}

func (e *Engine) processTrain(ctx context.Context, direction Direction, train ldbws.Train, now time.Time, seen map[string]bool) (Outcome, error) {
	serviceID := train.ServiceID()

	if seen[serviceID] {
		return Outcome{Skip: SkipDuplicate}, nil
	}

	stopList, err := BuildStopList(ctx, train, e.timedDetails())
	if err != nil {
		return Outcome{}, &TrainError{ServiceID: serviceID, Err: err}
	}

	if len(stopList) == 0 {
		return Outcome{Skip: SkipCancelled}, nil
	}

	southBracket, err := ResolveBracket(e.Stations.South, stopList, e.Stations)
	if err != nil {
		return Outcome{}, &TrainError{ServiceID: serviceID, Err: err}
	}
	northBracket, err := ResolveBracket(e.Stations.North, stopList, e.Stations)
	if err != nil {
		return Outcome{}, &TrainError{ServiceID: serviceID, Err: err}
	}

	near, far := southBracket, northBracket
	if direction == DirectionSouthbound {
		near, far = northBracket, southBracket
	}

	crossingInstant, err := Interpolate(now, near.Stop.Time, far.Stop.Time, near.Distance, far.Distance, e.Config.TomorrowAfter)
	if err != nil {
		return Outcome{}, &TrainError{ServiceID: serviceID, Err: err}
	}

	service := serviceOf(train)
	record := newRecord(serviceID, service.Operator, service.Destination, direction, e.Stations.Name(near.Station), near.Stop, crossingInstant)

	if record.Stale(now, e.Config.StaleAfter) {
		return Outcome{Skip: SkipStale}, nil
	}

	return Outcome{Record: record}, nil
}

// boardEnds gives the departure board origin and filter for a direction of travel
func (e *Engine) boardEnds(direction Direction) (string, string) {
	if direction == DirectionSouthbound {
		return e.Stations.NorthEnd(), e.Stations.SouthEnd()
	}

	return e.Stations.SouthEnd(), e.Stations.NorthEnd()
}

func (e *Engine) timedDetails() DetailFetcher {
	return timedDetailFetcher{source: e.Source, metrics: e.Metrics}
}

type timedDetailFetcher struct {
	source  DetailFetcher
	metrics *metrics.Collector
}

func (t timedDetailFetcher) ServiceDetail(ctx context.Context, serviceID string) ([]ldbws.CallingPoint, error) {
	start := time.Now()
	callingPoints, err := t.source.ServiceDetail(ctx, serviceID)
	t.metrics.ObserveUpstream("GetServiceDetails", start, err)

	return callingPoints, err
}

func serviceOf(train ldbws.Train) ldbws.Service {
	switch t := train.(type) {
	case ldbws.FutureTrain:
		return t.Service
	case ldbws.PastTrain:
		return t.Service
	default:
		return ldbws.Service{ID: train.ServiceID()}
	}
}

// IsUpstreamFailure reports whether err came from the schedule source rather than a single train
func IsUpstreamFailure(err error) bool {
	var fetchError *ldbws.FetchError
	return errors.As(err, &fetchError)
}
