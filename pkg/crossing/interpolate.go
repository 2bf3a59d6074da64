package crossing

import (
	"fmt"
	"time"

	"github.com/travigo/bridgetimes/pkg/util"
)

// Interpolate estimates when a train passes the bridge assuming a constant speed between the
// near station (the side the train comes from) and the far station.
// Times of day are anchored on now's calendar date.
func Interpolate(now time.Time, nearTime string, farTime string, nearDistance float64, farDistance float64, tomorrowAfter time.Duration) (time.Time, error) {
	if nearDistance+farDistance <= 0 {
		return time.Time{}, ErrZeroSpan
	}

	nearInstant, err := util.ParseTimeOfDay(now, nearTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidTime, nearTime)
	}
	farInstant, err := util.ParseTimeOfDay(now, farTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidTime, farTime)
	}

	// Stops either side of midnight
	if farInstant.Before(nearInstant) {
		farInstant = farInstant.AddDate(0, 0, 1)
	}

	fraction := nearDistance / (nearDistance + farDistance)
	crossingInstant := nearInstant.Add(time.Duration(fraction * float64(farInstant.Sub(nearInstant))))

	if now.Sub(crossingInstant) > tomorrowAfter {
		crossingInstant = crossingInstant.AddDate(0, 0, 1)
	}

	return crossingInstant, nil
}
