package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"kost-booking/internal/handler/api"
	"kost-booking/internal/handler/middleware"
	"kost-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware
	Flows          *api.BookingFlowHandler
	Bookings       *api.BookingHandler
	PaymentMethods *api.PaymentMethodHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/payment-methods", Handler: p.PaymentMethods.List},
		})

		flows := apiGroup.Group("/booking-flows")
		flows.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(flows, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Flows.Open, Mw: []gin.HandlerFunc{p.AuthMiddleware.RequireBooker()}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Flows.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Flows.Close},
				{Method: http.MethodPatch, Path: "/:id/details", Handler: p.Flows.UpdateDetails},
				{Method: http.MethodPost, Path: "/:id/continue", Handler: p.Flows.Continue},
				{Method: http.MethodPost, Path: "/:id/back", Handler: p.Flows.Back},
				{Method: http.MethodPut, Path: "/:id/payment-method", Handler: p.Flows.SelectPaymentMethod},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: p.Flows.Submit},
				{Method: http.MethodPost, Path: "/:id/retry", Handler: p.Flows.Retry},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Bookings.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Bookings.Get},
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
