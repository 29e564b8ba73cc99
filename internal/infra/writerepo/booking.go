package writerepo

import (
	"context"
	"errors"

	"consult-booking/internal/domain/booking"
	"consult-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// TryReserve performs the whole admission decision inside the caller's
// transaction. An advisory xact lock on the slot instant serializes writers
// for that slot only; independent slots proceed in parallel. The capacity
// guard is part of the INSERT itself, so no writer can observe a count that
// excludes a committed row.
//
// Kinds returned: DUPLICATE_KEY (same email already confirmed for the slot),
// CAPACITY_EXCEEDED (slot full), DB_FAILURE (everything else).
func (r *BookingRepository) TryReserve(ctx context.Context, tx pgx.Tx, b *booking.Booking, capacity int) (uuid.UUID, error) {
	slotKey := b.SlotStart().UTC().Unix()
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, slotKey); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to acquire slot lock", err)
	}

	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE lower(email) = $1
			  AND booking_datetime = $2
			  AND status = 'confirmed'
		)`, b.Email().String(), b.SlotStart()).Scan(&exists)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to check duplicate booking", err)
	}
	if exists {
		return uuid.Nil, infra.WrapRepoErr("confirmed booking already exists for this contact and slot", nil, infra.KindDuplicateKey)
	}

	q := b.Qualification()
	var id uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (
			id, full_name, email, whatsapp_number,
			categories, business_timeline, investment_ready, seen_elyscents,
			booking_datetime, status, created_at
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, 'confirmed', $10
		WHERE (
			SELECT COUNT(*) FROM bookings
			WHERE booking_datetime = $9 AND status = 'confirmed'
		) < $11
		RETURNING id`,
		b.ID(),
		b.FullName().String(),
		b.Email().String(),
		b.WhatsApp().String(),
		q.Categories,
		q.BusinessTimeline,
		q.InvestmentReady,
		q.SeenElyscents,
		b.SlotStart(),
		b.CreatedAt(),
		capacity,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr("slot is at capacity", nil, infra.KindCapacityExceeded)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			// Partial unique index backs up the probe above
			return uuid.Nil, infra.WrapRepoErr("confirmed booking already exists for this contact and slot", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	return id, nil
}
