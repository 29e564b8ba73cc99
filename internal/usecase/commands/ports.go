package commands

import (
	"context"

	"consult-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingRepository exposes reservation as one atomic operation. There is
// deliberately no separate count/insert pair: a pre-check followed by a write
// would reintroduce the race this design exists to prevent.
type BookingRepository interface {
	TryReserve(ctx context.Context, tx pgx.Tx, b *booking.Booking, capacity int) (uuid.UUID, error)
}

type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}
