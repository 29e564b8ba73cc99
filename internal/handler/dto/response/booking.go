package response

import (
	"time"

	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	Success   bool      `json:"success"`
	BookingID uuid.UUID `json:"booking_id"`
	Message   string    `json:"message"`
}

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	WhatsappNumber   string    `json:"whatsappNumber"`
	Categories       []string  `json:"categories"`
	BusinessTimeline string    `json:"businessTimeline"`
	InvestmentReady  bool      `json:"investmentReady"`
	SeenElyscents    bool      `json:"seenElyscents"`
	BookingDatetime  time.Time `json:"bookingDatetime"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               view.ID,
		FullName:         view.FullName,
		Email:            view.Email,
		WhatsappNumber:   view.WhatsappNumber,
		Categories:       view.Categories,
		BusinessTimeline: view.BusinessTimeline,
		InvestmentReady:  view.InvestmentReady,
		SeenElyscents:    view.SeenElyscents,
		BookingDatetime:  view.BookingDatetime,
		Status:           view.Status,
		CreatedAt:        view.CreatedAt,
	}
}
