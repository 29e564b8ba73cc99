package commands

import (
	"context"
	"log/slog"
	"time"

	"consult-booking/internal/domain/booking"
	"consult-booking/internal/domain/schedule"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreateBookingParams struct {
	FullName         string
	Email            string
	WhatsappNumber   string
	Categories       []string
	BusinessTimeline string
	InvestmentReady  bool
	SeenElyscents    bool
	BookingDatetime  time.Time
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	holidays    queries.HolidayReadStore
	capacity    queries.CapacityProvider
	uow         UnitOfWork
	window      schedule.Window
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	holidays queries.HolidayReadStore,
	capacity queries.CapacityProvider,
	uow UnitOfWork,
	window schedule.Window,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		holidays:    holidays,
		capacity:    capacity,
		uow:         uow,
		window:      window,
		clock:       clock,
	}
}

// CreateBooking validates fail-fast, then pushes the duplicate and capacity
// decisions into one transaction via TryReserve. Everything before the
// transaction is side-effect free, so a rejected request writes nothing.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	qualification, err := booking.NewQualification(
		params.Categories,
		params.BusinessTimeline,
		params.InvestmentReady,
		params.SeenElyscents,
	)
	if err != nil {
		return nil, err
	}

	entity, err := booking.New(
		params.FullName,
		params.Email,
		params.WhatsappNumber,
		qualification,
		params.BookingDatetime,
		c.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := c.rejectHoliday(ctx, entity.SlotStart()); err != nil {
		return nil, err
	}

	capacity := c.capacity.CurrentCapacity(ctx)

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, reserveErr := c.bookingRepo.TryReserve(ctx, tx, entity, capacity)
		if reserveErr != nil {
			return reserveErr
		}
		bookingID = id
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errs.ErrDuplicateBooking)
		case infra.IsKind(err, infra.KindCapacityExceeded):
			return nil, errs.Mark(err, errs.ErrCapacityExceeded)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	// Downstream notification is a fire-and-forget collaborator concern;
	// logging the event is all this core owes it.
	slog.Info("booking confirmed",
		"booking_id", bookingID,
		"slot", entity.SlotStart().In(c.window.Loc).Format(time.RFC3339),
		"email", entity.Email().String())

	return &CreateBookingResult{BookingID: bookingID}, nil
}

func (c *bookingCommandsImpl) rejectHoliday(ctx context.Context, slotStart time.Time) error {
	day := schedule.DayOf(slotStart, c.window.Loc)
	isHoliday, err := c.holidays.IsHoliday(ctx, day)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if isHoliday {
		return &booking.ValidationError{
			Field:   "bookingDatetime",
			Message: "Bookings are closed on this date",
		}
	}
	return nil
}
