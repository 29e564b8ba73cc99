package schedule

import (
	"errors"
	"time"
)

// DefaultSlotCapacity is the floor used when the staff roster cannot be read.
// An explicit empty roster is NOT a failure: zero active staff means the
// calendar is closed and capacity stays 0.
const DefaultSlotCapacity = 3

var ErrInvalidHourRange = errors.New("start hour must be before end hour within 0..24")

// Window describes the bookable portion of a business day. Hours are in the
// business timezone; slots are always one hour long.
type Window struct {
	Loc       *time.Location
	OpenHour  int
	CloseHour int
}

func NewWindow(loc *time.Location, openHour, closeHour int) (Window, error) {
	if err := ValidateHourRange(openHour, closeHour); err != nil {
		return Window{}, err
	}
	return Window{Loc: loc, OpenHour: openHour, CloseHour: closeHour}, nil
}

func ValidateHourRange(start, end int) error {
	if start < 0 || end > 24 || start >= end {
		return ErrInvalidHourRange
	}
	return nil
}

// Slot is derived state: it exists only as an aggregation over bookings and
// the roster, never as a stored row.
type Slot struct {
	Start    time.Time
	Capacity int
	Booked   int
}

func (s Slot) Available() bool {
	return s.Booked < s.Capacity
}

// Label renders the slot start for the UI, e.g. "10:00 AM".
func (s Slot) Label() string {
	return s.Start.Format("3:04 PM")
}

// ParseDay interprets a YYYY-MM-DD string as midnight in the business timezone.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}

// DayOf truncates an instant to the start of its business-timezone day.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// HourlyStarts returns the slot start instants for day within [startHour, endHour),
// ascending. day must already be midnight in the business timezone.
func HourlyStarts(day time.Time, startHour, endHour int) []time.Time {
	starts := make([]time.Time, 0, endHour-startHour)
	for h := startHour; h < endHour; h++ {
		starts = append(starts, day.Add(time.Duration(h)*time.Hour))
	}
	return starts
}
