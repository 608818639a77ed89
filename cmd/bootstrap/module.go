package bootstrap

import (
	"salon-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// The slog logger is provided by main, not here, so the request middleware
// and the fx app share one instance.
var Module = fx.Options(
	ConfigModule,
	components.StorageModule,
	components.UseCaseModule,
	components.HandlerModule,
)
