package request

import (
	"time"

	"consult-booking/internal/usecase/commands"
)

// CreateBookingRequest carries the raw funnel payload. Field-level
// validation lives in the domain so every failure gets a precise message;
// binding only rejects malformed JSON.
type CreateBookingRequest struct {
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	WhatsappNumber   string    `json:"whatsappNumber"`
	Categories       []string  `json:"categories"`
	BusinessTimeline string    `json:"businessTimeline"`
	InvestmentReady  bool      `json:"investmentReady"`
	SeenElyscents    bool      `json:"seenElyscents"`
	BookingDatetime  time.Time `json:"bookingDatetime"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		FullName:         r.FullName,
		Email:            r.Email,
		WhatsappNumber:   r.WhatsappNumber,
		Categories:       r.Categories,
		BusinessTimeline: r.BusinessTimeline,
		InvestmentReady:  r.InvestmentReady,
		SeenElyscents:    r.SeenElyscents,
		BookingDatetime:  r.BookingDatetime,
	}
}
