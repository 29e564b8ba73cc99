//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consult-booking/internal/domain/booking"
	"consult-booking/internal/domain/schedule"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/commands"
	"consult-booking/tests/common/builder"
	commandsmock "consult-booking/tests/mock/commands"
	queriesmock "consult-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *commandsmock.MockBookingRepository
	mockHolidays *queriesmock.MockHolidayReadStore
	mockCapacity *queriesmock.MockCapacityProvider
	mockUoW      *commandsmock.MockUnitOfWork
	clock        *clock.MockClock
	window       schedule.Window
	commands     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBookingRepository(s.ctrl)
	s.mockHolidays = queriesmock.NewMockHolidayReadStore(s.ctrl)
	s.mockCapacity = queriesmock.NewMockCapacityProvider(s.ctrl)
	s.mockUoW = commandsmock.NewMockUnitOfWork(s.ctrl)

	loc, err := time.LoadLocation("Asia/Karachi")
	s.Require().NoError(err)
	s.window, err = schedule.NewWindow(loc, 9, 17)
	s.Require().NoError(err)

	s.clock = clock.NewMockClock(builder.NewBookingBuilder().Now)

	s.commands = commands.NewBookingCommands(
		s.mockRepo, s.mockHolidays, s.mockCapacity, s.mockUoW, s.window, s.clock,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// expectUoWPassthrough wires Within to run the transactional closure with a
// nil tx, delegating the decision to the repository mock.
func (s *BookingCommandsTestSuite) expectUoWPassthrough() {
	s.mockUoW.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, pgx.Tx) error) error {
			return fn(ctx, nil)
		})
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("success reserves inside the unit of work", func() {
		params := builder.NewBookingBuilder().BuildParams()
		reservedID := uuid.New()

		s.mockHolidays.EXPECT().IsHoliday(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockCapacity.EXPECT().CurrentCapacity(gomock.Any()).Return(3)
		s.expectUoWPassthrough()
		s.mockRepo.EXPECT().
			TryReserve(gomock.Any(), gomock.Nil(), gomock.Any(), 3).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, b *booking.Booking, _ int) (uuid.UUID, error) {
				s.Equal(params.Email, b.Email().String())
				s.True(params.BookingDatetime.Equal(b.SlotStart()))
				return reservedID, nil
			})

		result, err := s.commands.CreateBooking(ctx, params)
		s.Require().NoError(err)
		s.Equal(reservedID, result.BookingID)
	})

	s.Run("validation failure never touches storage", func() {
		params := builder.NewBookingBuilder().WithEmail("not-an-email").BuildParams()

		result, err := s.commands.CreateBooking(ctx, params)
		s.Require().Nil(result)

		var vErr *booking.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("email", vErr.Field)
	})

	s.Run("past slot rejected before the roster is consulted", func() {
		params := builder.NewBookingBuilder().AsPastSlot().BuildParams()

		result, err := s.commands.CreateBooking(ctx, params)
		s.Require().Nil(result)

		var vErr *booking.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Booking time must be in the future", vErr.Message)
	})

	s.Run("holiday slot rejected as validation error", func() {
		params := builder.NewBookingBuilder().BuildParams()
		s.mockHolidays.EXPECT().IsHoliday(gomock.Any(), gomock.Any()).Return(true, nil)

		result, err := s.commands.CreateBooking(ctx, params)
		s.Require().Nil(result)

		var vErr *booking.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Bookings are closed on this date", vErr.Message)
	})

	s.Run("holiday lookup failure maps to database error", func() {
		params := builder.NewBookingBuilder().BuildParams()
		s.mockHolidays.EXPECT().IsHoliday(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

		_, err := s.commands.CreateBooking(ctx, params)
		s.Require().ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})

	s.Run("duplicate slot for the same contact", func() {
		params := builder.NewBookingBuilder().BuildParams()

		s.mockHolidays.EXPECT().IsHoliday(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockCapacity.EXPECT().CurrentCapacity(gomock.Any()).Return(3)
		s.expectUoWPassthrough()
		s.mockRepo.EXPECT().
			TryReserve(gomock.Any(), gomock.Nil(), gomock.Any(), 3).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate booking", pgx.ErrNoRows, infra.KindDuplicateKey))

		_, err := s.commands.CreateBooking(ctx, params)
		s.Require().ErrorIs(err, errs.ErrDuplicateBooking)
	})

	s.Run("slot at capacity", func() {
		params := builder.NewBookingBuilder().BuildParams()

		s.mockHolidays.EXPECT().IsHoliday(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockCapacity.EXPECT().CurrentCapacity(gomock.Any()).Return(3)
		s.expectUoWPassthrough()
		s.mockRepo.EXPECT().
			TryReserve(gomock.Any(), gomock.Nil(), gomock.Any(), 3).
			Return(uuid.Nil, infra.WrapRepoErr("slot full", pgx.ErrNoRows, infra.KindCapacityExceeded))

		_, err := s.commands.CreateBooking(ctx, params)
		s.Require().ErrorIs(err, errs.ErrCapacityExceeded)
	})

	s.Run("storage failure maps to database error", func() {
		params := builder.NewBookingBuilder().BuildParams()

		s.mockHolidays.EXPECT().IsHoliday(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockCapacity.EXPECT().CurrentCapacity(gomock.Any()).Return(3)
		s.expectUoWPassthrough()
		s.mockRepo.EXPECT().
			TryReserve(gomock.Any(), gomock.Nil(), gomock.Any(), 3).
			Return(uuid.Nil, infra.WrapRepoErr("insert booking", errors.New("connection reset")))

		_, err := s.commands.CreateBooking(ctx, params)
		s.Require().ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})

	s.Run("zero capacity rejects every reservation", func() {
		params := builder.NewBookingBuilder().BuildParams()

		s.mockHolidays.EXPECT().IsHoliday(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockCapacity.EXPECT().CurrentCapacity(gomock.Any()).Return(0)
		s.expectUoWPassthrough()
		s.mockRepo.EXPECT().
			TryReserve(gomock.Any(), gomock.Nil(), gomock.Any(), 0).
			Return(uuid.Nil, infra.WrapRepoErr("slot full", pgx.ErrNoRows, infra.KindCapacityExceeded))

		_, err := s.commands.CreateBooking(ctx, params)
		s.Require().ErrorIs(err, errs.ErrCapacityExceeded)
	})
}
