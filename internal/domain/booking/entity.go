package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id            uuid.UUID
	fullName      ContactName
	email         Email
	whatsapp      WhatsAppNumber
	qualification Qualification
	slotStart     time.Time
	status        Status
	createdAt     time.Time
}

// New validates in the order the API contract promises: required fields,
// email shape, then the slot instant. The capacity and duplicate checks
// belong to the storage layer and are deliberately absent here.
func New(
	fullName string,
	email string,
	whatsapp string,
	qualification Qualification,
	slotStart time.Time,
	now time.Time,
) (*Booking, error) {
	name, err := NewContactName(fullName)
	if err != nil {
		return nil, err
	}

	addr, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	number, err := NewWhatsAppNumber(whatsapp)
	if err != nil {
		return nil, err
	}

	if slotStart.IsZero() {
		return nil, newValidationError("bookingDatetime", "Booking time is required")
	}
	if !slotStart.After(now) {
		return nil, newValidationError("bookingDatetime", "Booking time must be in the future")
	}

	return &Booking{
		id:            uuid.New(),
		fullName:      name,
		email:         addr,
		whatsapp:      number,
		qualification: qualification,
		slotStart:     slotStart,
		status:        StatusConfirmed,
		createdAt:     now,
	}, nil
}

func (b *Booking) ID() uuid.UUID {
	return b.id
}

func (b *Booking) FullName() ContactName {
	return b.fullName
}

func (b *Booking) Email() Email {
	return b.email
}

func (b *Booking) WhatsApp() WhatsAppNumber {
	return b.whatsapp
}

func (b *Booking) Qualification() Qualification {
	return b.qualification
}

func (b *Booking) SlotStart() time.Time {
	return b.slotStart
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}
