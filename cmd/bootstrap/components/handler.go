package components

import (
	"studio-agenda/internal/handler"
	"studio-agenda/internal/handler/api"
	"studio-agenda/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAgendaHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
