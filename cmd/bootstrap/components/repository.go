package components

import (
	"consult-booking/internal/infra/readstore"
	"consult-booking/internal/infra/uow"
	"consult-booking/internal/infra/writerepo"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// UnitOfWork (already returns the port type)
		uow.NewPostgresUoW,
		// Write side
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffReadStore)),
		),
		fx.Annotate(
			readstore.NewHolidayReadStore,
			fx.As(new(queries.HolidayReadStore)),
		),
	),
)
