package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"turfbook/internal/domain/principal"
	"turfbook/internal/handler/api"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/config"
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
	Limiter        middleware.RateLimiter `optional:"true"`

	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Venue   *api.VenueHandler
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

	var initiateMw []gin.HandlerFunc
	if p.Config.RateLimit.Enabled && p.Limiter != nil {
		initiateMw = append(initiateMw, middleware.RateLimit(p.Limiter, "initiate"))
	}

	apiGroup := engine.Group("/api")
	{
		// signed callbacks carry no session
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/bookings/confirm", Handler: p.Booking.Confirm},
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: p.Payment.Webhook},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/initiate", Handler: p.Booking.Initiate, Mw: initiateMw},
				{Method: http.MethodGet, Path: "", Handler: p.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Booking.Get},
			})
		}

		venues := apiGroup.Group("/venues")
		venues.Use(p.AuthMiddleware.RequireAuth(), p.AuthMiddleware.RequireRoleAtLeast(principal.RoleVenueAdmin))
		{
			addRoutes(venues, []route{
				{Method: http.MethodPost, Path: "/:id/slots/reconcile", Handler: p.Venue.ReconcileSlots},
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
