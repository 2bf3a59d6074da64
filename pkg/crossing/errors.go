package crossing

import (
	"errors"
	"fmt"
)

var (
	ErrStationNotCalled = errors.New("train does not call at any station on this side of the bridge")
	ErrZeroSpan         = errors.New("both bracketing stations are zero distance from the bridge")
	ErrInvalidTime      = errors.New("invalid time of day")
)

// TrainError is a failure confined to a single train. The rest of the batch carries on.
type TrainError struct {
	ServiceID string
	Err       error
}

func (e *TrainError) Error() string {
	return fmt.Sprintf("train %s: %s", e.ServiceID, e.Err)
}

func (e *TrainError) Unwrap() error {
	return e.Err
}
