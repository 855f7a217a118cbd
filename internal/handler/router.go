package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"famboard/internal/handler/api"
	"famboard/internal/handler/middleware"
	"famboard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, presentHandler *api.PresentHandler, waterTempHandler *api.WaterTempHandler, pushHandler *api.PushHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, presentHandler, waterTempHandler, pushHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, presentHandler *api.PresentHandler, waterTempHandler *api.WaterTempHandler, pushHandler *api.PushHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		presents := apiGroup.Group("/presents")
		{
			addRoutes(presents, []route{
				{Method: http.MethodPost, Path: "", Handler: presentHandler.CreatePresent},
				{Method: http.MethodGet, Path: "", Handler: presentHandler.ListOthers},
				{Method: http.MethodGet, Path: "/mine", Handler: presentHandler.ListMine},
				{Method: http.MethodPatch, Path: "/:id/state", Handler: presentHandler.TransitionPresent},
				{Method: http.MethodPatch, Path: "/:id/bought", Handler: presentHandler.SetBought},
				{Method: http.MethodDelete, Path: "/:id", Handler: presentHandler.DeletePresent},
			})
		}

		waterTemp := apiGroup.Group("/water-temperature")
		{
			addRoutes(waterTemp, []route{
				{Method: http.MethodGet, Path: "", Handler: waterTempHandler.CurrentTemperature},
				{Method: http.MethodPut, Path: "/alerts", Handler: waterTempHandler.EnableAlerts},
				{Method: http.MethodDelete, Path: "/alerts", Handler: waterTempHandler.DisableAlerts},
			})
		}

		push := apiGroup.Group("/push")
		{
			addRoutes(push, []route{
				{Method: http.MethodPost, Path: "/subscriptions", Handler: pushHandler.Subscribe},
				{Method: http.MethodDelete, Path: "/subscriptions", Handler: pushHandler.Unsubscribe},
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
