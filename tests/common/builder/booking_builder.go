//go:build unit || e2e

package builder

import (
	"time"

	dombooking "consult-booking/internal/domain/booking"
	reqdto "consult-booking/internal/handler/dto/request"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	FullName         string
	Email            string
	WhatsappNumber   string
	Categories       []string
	BusinessTimeline string
	InvestmentReady  bool
	SeenElyscents    bool
	BookingDatetime  time.Time
	Now              time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		FullName:         "Ayesha Khan",
		Email:            "ayesha@example.com",
		WhatsappNumber:   "+923001234567",
		Categories:       []string{"perfume", "skincare"},
		BusinessTimeline: "3-6 months",
		InvestmentReady:  true,
		SeenElyscents:    true,
		BookingDatetime:  now.Add(48 * time.Hour),
		Now:              now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	qualification, err := dombooking.NewQualification(b.Categories, b.BusinessTimeline, b.InvestmentReady, b.SeenElyscents)
	if err != nil {
		return nil, err
	}
	return dombooking.New(b.FullName, b.Email, b.WhatsappNumber, qualification, b.BookingDatetime, b.Now)
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		FullName:         b.FullName,
		Email:            b.Email,
		WhatsappNumber:   b.WhatsappNumber,
		Categories:       b.Categories,
		BusinessTimeline: b.BusinessTimeline,
		InvestmentReady:  b.InvestmentReady,
		SeenElyscents:    b.SeenElyscents,
		BookingDatetime:  b.BookingDatetime,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FullName:         b.FullName,
		Email:            b.Email,
		WhatsappNumber:   b.WhatsappNumber,
		Categories:       b.Categories,
		BusinessTimeline: b.BusinessTimeline,
		InvestmentReady:  b.InvestmentReady,
		SeenElyscents:    b.SeenElyscents,
		BookingDatetime:  b.BookingDatetime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:               uuid.New(),
		FullName:         b.FullName,
		Email:            b.Email,
		WhatsappNumber:   b.WhatsappNumber,
		Categories:       b.Categories,
		BusinessTimeline: b.BusinessTimeline,
		InvestmentReady:  b.InvestmentReady,
		SeenElyscents:    b.SeenElyscents,
		BookingDatetime:  b.BookingDatetime,
		Status:           "confirmed",
		CreatedAt:        b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithFullName(name string) *BookingBuilder {
	b.FullName = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithWhatsappNumber(number string) *BookingBuilder {
	b.WhatsappNumber = number
	return b
}

func (b *BookingBuilder) WithCategories(categories []string) *BookingBuilder {
	b.Categories = categories
	return b
}

func (b *BookingBuilder) WithBusinessTimeline(timeline string) *BookingBuilder {
	b.BusinessTimeline = timeline
	return b
}

func (b *BookingBuilder) WithBookingDatetime(t time.Time) *BookingBuilder {
	b.BookingDatetime = t
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

func (b *BookingBuilder) AsPastSlot() *BookingBuilder {
	b.BookingDatetime = b.Now.Add(-time.Hour)
	return b
}
