package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	Time      string    `json:"time"`
	Datetime  time.Time `json:"datetime"`
	Available bool      `json:"available"`
	Capacity  int       `json:"capacity"`
	Booked    int       `json:"booked"`
}

// DayScheduleView is the availability answer for a single calendar day.
// Reason is set (and Slots empty) when the day is not queryable at all:
// past dates and holidays are not errors, just empty calendars.
type DayScheduleView struct {
	Slots  []SlotView `json:"slots"`
	Reason string     `json:"reason,omitempty"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	WhatsappNumber   string    `json:"whatsapp_number"`
	Categories       []string  `json:"categories"`
	BusinessTimeline string    `json:"business_timeline"`
	InvestmentReady  bool      `json:"investment_ready"`
	SeenElyscents    bool      `json:"seen_elyscents"`
	BookingDatetime  time.Time `json:"booking_datetime"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Ports onto the persistence store. Booked counts are keyed by the slot
// start's Unix timestamp so map lookups ignore time.Time location baggage.
type BookingReadStore interface {
	CountConfirmedBySlot(ctx context.Context, from, to time.Time) (map[int64]int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type StaffReadStore interface {
	CountActiveBookable(ctx context.Context) (int, error)
}

type HolidayReadStore interface {
	IsHoliday(ctx context.Context, day time.Time) (bool, error)
}
