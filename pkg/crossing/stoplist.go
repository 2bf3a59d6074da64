package crossing

import (
	"context"
	"fmt"

	"github.com/travigo/bridgetimes/pkg/ldbws"
)

type StopStatus string

const (
	StatusDueOnTime         StopStatus = "Due: On Time"
	StatusDueLate           StopStatus = "Due: Late"
	StatusDepartedOnTime    StopStatus = "Departed: On Time"
	StatusDepartedLate      StopStatus = "Departed: Late"
	StatusTimetabledDelayed StopStatus = "Timetabled: Delayed"
)

type StopEntry struct {
	Station string
	Time    string
	Status  StopStatus
}

// StopList maps a station CRS to when the train is there. Cancelled stops are never present.
type StopList map[string]StopEntry

type DetailFetcher interface {
	ServiceDetail(ctx context.Context, serviceID string) ([]ldbws.CallingPoint, error)
}

// BuildStopList collects every station the train still calls at along with its time there.
// Trains that have already left their origin have their calling points looked up through details.
func BuildStopList(ctx context.Context, train ldbws.Train, details DetailFetcher) (StopList, error) {
	stopList := StopList{}

	var service ldbws.Service
	var callingPoints []ldbws.CallingPoint
	departed := false

	switch t := train.(type) {
	case ldbws.FutureTrain:
		service = t.Service
		callingPoints = t.CallingPoints
	case ldbws.PastTrain:
		detailCallingPoints, err := details.ServiceDetail(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("service details lookup: %w", err)
		}

		service = t.Service
		callingPoints = detailCallingPoints
		departed = true
	case ldbws.InvalidTrain:
		return nil, t.Err
	default:
		return nil, fmt.Errorf("unsupported train type %T", train)
	}

	if entry, ok := originEntry(service, departed); ok {
		stopList[entry.Station] = entry
	}

	for _, callingPoint := range callingPoints {
		if entry, ok := callingPointEntry(callingPoint); ok {
			stopList[entry.Station] = entry
		}
	}

	return stopList, nil
}

func originEntry(service ldbws.Service, departed bool) (StopEntry, bool) {
	entry := StopEntry{Station: service.Origin, Time: service.Scheduled}

	switch {
	case service.Estimated == ldbws.StatusCancelled:
		return StopEntry{}, false
	case service.Estimated == ldbws.StatusOnTime && departed:
		entry.Status = StatusDepartedOnTime
	case service.Estimated == ldbws.StatusOnTime:
		entry.Status = StatusDueOnTime
	case departed:
		entry.Status = StatusDepartedLate
		entry.Time = service.Estimated
	case service.Estimated == ldbws.StatusDelayed:
		entry.Status = StatusTimetabledDelayed
	default:
		entry.Status = StatusDueLate
		entry.Time = service.Estimated
	}

	return entry, true
}

func callingPointEntry(callingPoint ldbws.CallingPoint) (StopEntry, bool) {
	if callingPoint.Cancelled {
		return StopEntry{}, false
	}

	entry := StopEntry{Station: callingPoint.Crs, Time: callingPoint.Scheduled}

	if callingPoint.Arrived() {
		switch callingPoint.Actual {
		case ldbws.StatusCancelled:
			return StopEntry{}, false
		case ldbws.StatusOnTime:
			entry.Status = StatusDepartedOnTime
		default:
			entry.Status = StatusDepartedLate
		}

		return entry, true
	}

	switch callingPoint.Estimated {
	case ldbws.StatusCancelled:
		return StopEntry{}, false
	case ldbws.StatusOnTime:
		entry.Status = StatusDueOnTime
	case ldbws.StatusDelayed:
		entry.Status = StatusTimetabledDelayed
	default:
		entry.Status = StatusDueLate
		entry.Time = callingPoint.Estimated
	}

	return entry, true
}
