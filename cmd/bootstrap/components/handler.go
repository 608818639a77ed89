package components

import (
	"salon-scheduler/internal/handler"
	"salon-scheduler/internal/handler/api"
	"salon-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewSessionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
