package bootstrap

import (
	"salon-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads the env-driven configuration once; every other module
// takes config.Config from the graph.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
