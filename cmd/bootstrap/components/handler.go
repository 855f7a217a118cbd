package components

import (
	"famboard/internal/handler"
	"famboard/internal/handler/api"
	"famboard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPresentHandler,
		api.NewWaterTempHandler,
		api.NewPushHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
