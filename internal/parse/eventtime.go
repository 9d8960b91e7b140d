package parse

import (
	"fmt"
	"strings"
	"time"

	"venue-booking-backend/internal/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// EventTime combines a booking's date and time fields into a single instant
// in the given location.
func EventTime(date, clock string, loc *time.Location) (time.Time, error) {
	clock = ClipClock(clock)
	ts, err := time.ParseInLocation(dateLayout+"T"+timeLayout, date+"T"+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse event time %q %q: %w", date, clock, err)
	}
	return ts, nil
}

// ClipClock trims a time-of-day string to HH:MM; form inputs sometimes carry
// seconds.
func ClipClock(clock string) string {
	if len(clock) > 5 && strings.Count(clock, ":") == 2 {
		return clock[:5]
	}
	return clock
}

// FireTime computes when a booking's reminder should fire: one hour before
// the event, or the previous day at dailyHour local time.
func FireTime(b model.Booking, loc *time.Location, dailyHour int) (time.Time, error) {
	event, err := EventTime(b.Date, b.Time, loc)
	if err != nil {
		return time.Time{}, err
	}
	if b.Reminder == model.Reminder1Hour {
		return event.Add(-time.Hour), nil
	}
	prev := event.AddDate(0, 0, -1)
	return time.Date(prev.Year(), prev.Month(), prev.Day(), dailyHour, 0, 0, 0, loc), nil
}

// FormatDate renders a stored date for display, e.g. "Mar 5, 2026". Falls
// back to the raw string when it does not parse.
func FormatDate(date string) string {
	ts, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return ts.Format("Jan 2, 2006")
}
