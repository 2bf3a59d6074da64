package ldbws

import (
	"errors"
	"fmt"

	"github.com/travigo/bridgetimes/pkg/util"
)

var ErrMalformedService = errors.New("malformed service record")

// Board status strings used in place of a time
const (
	StatusOnTime    = "On time"
	StatusDelayed   = "Delayed"
	StatusCancelled = "Cancelled"
)

// Train is one service seen on a departure board. It is always one of
// FutureTrain, PastTrain or InvalidTrain.
type Train interface {
	ServiceID() string
	train()
}

// Service holds the board-level details shared by every valid train
type Service struct {
	ID string

	// Origin is the CRS of the board the service was read from
	Origin    string
	Scheduled string
	Estimated string

	Operator    string
	Destination string
}

func (s Service) ServiceID() string {
	return s.ID
}

// FutureTrain has not yet left the board origin and carries its onward calling points
type FutureTrain struct {
	Service

	CallingPoints []CallingPoint
}

// PastTrain has left the board origin; its onward calling points need a service details lookup
type PastTrain struct {
	Service
}

// InvalidTrain is a service that failed validation when the board was read
type InvalidTrain struct {
	ID  string
	Err error
}

func (t InvalidTrain) ServiceID() string {
	return t.ID
}

func (FutureTrain) train()  {}
func (PastTrain) train()    {}
func (InvalidTrain) train() {}

type CallingPoint struct {
	Crs  string
	Name string

	Scheduled string
	Estimated string
	Actual    string

	Cancelled bool
}

// Arrived reports whether an actual time has been recorded for the stop
func (c CallingPoint) Arrived() bool {
	return c.Actual != ""
}

func newTrain(origin string, service nationalRailwayService) Train {
	if service.ServiceID == "" {
		return InvalidTrain{Err: fmt.Errorf("%w: missing serviceID", ErrMalformedService)}
	}

	invalid := func(format string, args ...any) Train {
		return InvalidTrain{
			ID:  service.ServiceID,
			Err: fmt.Errorf("%w: %s", ErrMalformedService, fmt.Sprintf(format, args...)),
		}
	}

	if !util.IsTimeOfDay(service.Scheduled) {
		return invalid("scheduled departure %q is not a time", service.Scheduled)
	}
	if service.Estimated == "" {
		return invalid("missing estimated departure")
	}

	destination := ""
	if len(service.Destination) > 0 {
		destination = service.Destination[0].Name
	}

	base := Service{
		ID:          service.ServiceID,
		Origin:      origin,
		Scheduled:   service.Scheduled,
		Estimated:   service.Estimated,
		Operator:    service.Operator,
		Destination: destination,
	}

	if service.SubsequentCallingPoints == nil {
		return PastTrain{Service: base}
	}

	callingPoints, err := newCallingPoints(service.SubsequentCallingPoints.first())
	if err != nil {
		return invalid("%s", err)
	}

	return FutureTrain{
		Service:       base,
		CallingPoints: callingPoints,
	}
}

func newCallingPoints(rawCallingPoints []nationalRailwayCallingPoint) ([]CallingPoint, error) {
	callingPoints := make([]CallingPoint, 0, len(rawCallingPoints))

	for _, raw := range rawCallingPoints {
		if raw.Crs == "" {
			return nil, fmt.Errorf("calling point %q has no CRS", raw.Name)
		}
		if raw.Estimated == "" && raw.Actual == "" {
			return nil, fmt.Errorf("calling point %s has neither an estimated nor an actual time", raw.Crs)
		}

		callingPoints = append(callingPoints, CallingPoint{
			Crs:       raw.Crs,
			Name:      raw.Name,
			Scheduled: raw.Scheduled,
			Estimated: raw.Estimated,
			Actual:    raw.Actual,
			Cancelled: raw.IsCancelled,
		})
	}

	return callingPoints, nil
}

func newTrains(origin string, board stationBoardWithDetails) []Train {
	if board.Crs != "" {
		origin = board.Crs
	}

	if board.TrainServices == nil {
		return nil
	}

	trains := make([]Train, 0, len(board.TrainServices.Services))
	for _, service := range board.TrainServices.Services {
		trains = append(trains, newTrain(origin, service))
	}

	return trains
}

func (d nationalRailwayServiceDetails) callingPoints() ([]CallingPoint, error) {
	callingPoints, err := newCallingPoints(d.SubsequentCallingPoints.first())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedService, err)
	}

	return callingPoints, nil
}
