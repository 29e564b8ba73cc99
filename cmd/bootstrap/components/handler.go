package components

import (
	"consult-booking/internal/domain/schedule"
	"consult-booking/internal/handler"
	"consult-booking/internal/handler/api"
	"consult-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAvailabilityHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)

// The business window doubles as the default query range for availability.
func NewAvailabilityHandler(availability queries.AvailabilityQueries, window schedule.Window) *api.AvailabilityHandler {
	return api.NewAvailabilityHandler(availability, window.OpenHour, window.CloseHour)
}
