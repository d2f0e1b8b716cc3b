package components

import (
	"lounge-pos/internal/handler"
	"lounge-pos/internal/handler/api"
	"lounge-pos/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDeviceHandler,
		api.NewCatalogHandler,
		api.NewSettingsHandler,
		api.NewHistoryHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Device   *api.DeviceHandler
	Catalog  *api.CatalogHandler
	Settings *api.SettingsHandler
	History  *api.HistoryHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Device:   p.Device,
		Catalog:  p.Catalog,
		Settings: p.Settings,
		History:  p.History,
	}
}
