package util

import (
	"time"
)

const TimeOfDayLayout = "15:04"

func AddTimeToDate(date time.Time, sourceTime time.Time) time.Time {
	newDateTime := time.Date(date.Year(), date.Month(), date.Day(), sourceTime.Hour(), sourceTime.Minute(), sourceTime.Second(), sourceTime.Nanosecond(), date.Location())

	return newDateTime
}

// ParseTimeOfDay reads an "HH:MM" board time and places it on the calendar day of date
func ParseTimeOfDay(date time.Time, timeOfDay string) (time.Time, error) {
	parsed, err := time.Parse(TimeOfDayLayout, timeOfDay)
	if err != nil {
		return time.Time{}, err
	}

	return AddTimeToDate(date, parsed), nil
}

func IsTimeOfDay(value string) bool {
	_, err := time.Parse(TimeOfDayLayout, value)
	return err == nil
}
