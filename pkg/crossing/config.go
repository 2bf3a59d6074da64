package crossing

import (
	"time"
)

const (
	// DefaultStaleAfter is how far in the past a crossing may be and still be shown
	DefaultStaleAfter = 5 * time.Minute

	// DefaultTomorrowAfter is how far in the past a crossing may fall before it is read as tomorrow's
	DefaultTomorrowAfter = 2 * time.Hour

	DefaultTimezone = "Europe/London"
)

type Config struct {
	Location *time.Location

	StaleAfter    time.Duration
	TomorrowAfter time.Duration

	// Now is the clock used for staleness and date anchoring, time.Now when nil
	Now func() time.Time
}

func DefaultConfig() Config {
	location, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		location = time.Local
	}

	return Config{
		Location:      location,
		StaleAfter:    DefaultStaleAfter,
		TomorrowAfter: DefaultTomorrowAfter,
		Now:           time.Now,
	}
}

func (c Config) now() time.Time {
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}

	if c.Location != nil {
		now = now.In(c.Location)
	}

	return now
}
