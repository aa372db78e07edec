package components

import (
	"dining-concierge/internal/handler"
	"dining-concierge/internal/handler/api"
	"dining-concierge/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDialogHandler,
		middleware.NewServiceAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
