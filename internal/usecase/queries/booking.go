package queries

import (
	"context"

	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
}

func NewBookingQueries(bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
