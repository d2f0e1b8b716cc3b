package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lounge-pos/internal/handler/api"
	"lounge-pos/internal/handler/middleware"
	"lounge-pos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the route owners so fx can inject them as one value.
type Handlers struct {
	Auth     *api.AuthHandler
	Device   *api.DeviceHandler
	Catalog  *api.CatalogHandler
	Settings *api.SettingsHandler
	History  *api.HistoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		devices := apiGroup.Group("/devices")
		devices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(devices, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Device.List},
				{Method: http.MethodPost, Path: "", Handler: h.Device.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Device.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Device.Delete},
				{Method: http.MethodPost, Path: "/:id/start", Handler: h.Device.Start},
				{Method: http.MethodPost, Path: "/:id/stop", Handler: h.Device.Stop},
				{Method: http.MethodPost, Path: "/:id/mode", Handler: h.Device.ToggleMode},
				{Method: http.MethodPost, Path: "/:id/drinks", Handler: h.Device.AddDrink},
				{Method: http.MethodPost, Path: "/:id/reservations", Handler: h.Device.AddReservation},
				{Method: http.MethodDelete, Path: "/:id/reservations/:reservationId", Handler: h.Device.CancelReservation},
			})
		}

		drinks := apiGroup.Group("/drinks")
		drinks.Use(authMiddleware.RequireAuth())
		{
			addRoutes(drinks, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.List},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.Delete},
				{Method: http.MethodPost, Path: "/:id/stock", Handler: h.Catalog.AdjustStock},
				{Method: http.MethodPut, Path: "/:id/price", Handler: h.Catalog.UpdatePrice},
			})
		}

		settings := apiGroup.Group("/settings")
		settings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "/pricing", Handler: h.Settings.GetPricing},
				{Method: http.MethodPut, Path: "/pricing", Handler: h.Settings.UpdatePricing},
			})
		}

		reports := apiGroup.Group("")
		reports.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/history", Handler: h.History.List},
				{Method: http.MethodGet, Path: "/history/export", Handler: h.History.Export},
				{Method: http.MethodGet, Path: "/stats/daily", Handler: h.History.DailyStats},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
