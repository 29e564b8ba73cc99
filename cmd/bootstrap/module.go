package bootstrap

import (
	"consult-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	ScheduleModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
