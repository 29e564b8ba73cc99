package queries

import (
	"context"
	"time"

	"consult-booking/internal/domain/schedule"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
)

const (
	reasonPastDate = "past dates are not bookable"
	reasonHoliday  = "the studio is closed on this date"
)

type AvailabilityQueries interface {
	// DaySchedule answers availability for one calendar day in the business
	// timezone. The result is an advisory snapshot: the reservation command
	// re-validates capacity authoritatively at write time.
	DaySchedule(ctx context.Context, day string, startHour, endHour int) (*DayScheduleView, error)
}

type availabilityQueriesImpl struct {
	bookings BookingReadStore
	holidays HolidayReadStore
	capacity CapacityProvider
	window   schedule.Window
	clock    clock.Clock
}

func NewAvailabilityQueries(
	bookings BookingReadStore,
	holidays HolidayReadStore,
	capacity CapacityProvider,
	window schedule.Window,
	clock clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		bookings: bookings,
		holidays: holidays,
		capacity: capacity,
		window:   window,
		clock:    clock,
	}
}

func (q *availabilityQueriesImpl) DaySchedule(ctx context.Context, day string, startHour, endHour int) (*DayScheduleView, error) {
	if err := schedule.ValidateHourRange(startHour, endHour); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSlotRange)
	}

	date, err := schedule.ParseDay(day, q.window.Loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	today := schedule.DayOf(q.clock.Now(), q.window.Loc)
	if date.Before(today) {
		return &DayScheduleView{Slots: []SlotView{}, Reason: reasonPastDate}, nil
	}

	isHoliday, err := q.holidays.IsHoliday(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if isHoliday {
		return &DayScheduleView{Slots: []SlotView{}, Reason: reasonHoliday}, nil
	}

	capacity := q.capacity.CurrentCapacity(ctx)

	starts := schedule.HourlyStarts(date, startHour, endHour)
	from := date.Add(time.Duration(startHour) * time.Hour)
	to := date.Add(time.Duration(endHour) * time.Hour)

	booked, err := q.bookings.CountConfirmedBySlot(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slots := make([]SlotView, 0, len(starts))
	for _, start := range starts {
		slot := schedule.Slot{
			Start:    start,
			Capacity: capacity,
			Booked:   booked[start.UTC().Unix()],
		}
		slots = append(slots, SlotView{
			Time:      slot.Label(),
			Datetime:  start,
			Available: slot.Available(),
			Capacity:  slot.Capacity,
			Booked:    slot.Booked,
		})
	}

	return &DayScheduleView{Slots: slots}, nil
}
