package validate

import (
	"errors"
	"time"
)

// DayLayout is the wire format for calendar days. Reservations are whole
// days, so no time-of-day or zone information crosses the boundary.
const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid calendar day, expected YYYY-MM-DD")

// ParseDay parses a calendar day and normalizes it to midnight UTC.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDay(d time.Time) string {
	return d.Format(DayLayout)
}
