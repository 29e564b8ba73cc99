package bootstrap

import (
	"time"

	"consult-booking/internal/domain/schedule"
	"consult-booking/internal/pkg/config"
	"consult-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewBusinessWindow,
	),
)

func NewBusinessWindow(cfg config.Config) (schedule.Window, error) {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return schedule.Window{}, errs.Wrap(err, "invalid BOOKING_TIMEZONE")
	}
	return schedule.NewWindow(loc, cfg.Booking.OpenHour, cfg.Booking.CloseHour)
}
