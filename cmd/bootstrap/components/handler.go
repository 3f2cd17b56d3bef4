package components

import (
	"fieldbook/internal/handler"
	"fieldbook/internal/handler/api"
	"fieldbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFieldHandler,
		api.NewBookingHandler,
		api.NewWizardHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
