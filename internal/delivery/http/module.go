package http

import (
	"go.uber.org/fx"

	"twotier-webapp/internal/delivery/http/handler"
	"twotier-webapp/internal/delivery/http/router"
)

var Module = fx.Module("http",
	fx.Provide(
		handler.NewUserHandler,
		handler.NewLogHandler,
		handler.NewHealthHandler,
		handler.NewInfoHandler,
		router.NewRouter,
	),
)
