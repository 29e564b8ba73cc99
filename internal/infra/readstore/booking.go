package readstore

import (
	"context"
	"time"

	"consult-booking/internal/infra"
	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// CountConfirmedBySlot aggregates booked counts from stored rows on every
// call. Keeping this a derived read (rather than a live counter) means the
// count can never drift from the bookings that actually committed.
func (r *BookingReadStore) CountConfirmedBySlot(ctx context.Context, from, to time.Time) (map[int64]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT booking_datetime, COUNT(*)
		FROM bookings
		WHERE booking_datetime >= $1
		  AND booking_datetime < $2
		  AND status = 'confirmed'
		GROUP BY booking_datetime`, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by slot", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var slotStart time.Time
		var n int
		if err := rows.Scan(&slotStart, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking count row", err)
		}
		counts[slotStart.UTC().Unix()] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking count rows", err)
	}

	return counts, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, full_name, email, whatsapp_number,
		       categories, business_timeline, investment_ready, seen_elyscents,
		       booking_datetime, status, created_at
		FROM bookings
		WHERE id = $1`, id)

	var view queries.BookingView
	err := row.Scan(
		&view.ID,
		&view.FullName,
		&view.Email,
		&view.WhatsappNumber,
		&view.Categories,
		&view.BusinessTimeline,
		&view.InvestmentReady,
		&view.SeenElyscents,
		&view.BookingDatetime,
		&view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &view, nil
}
