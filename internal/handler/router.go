package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking-gateway/internal/handler/api"
	"hotel-booking-gateway/internal/handler/middleware"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/pkg/session"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Room    *api.RoomHandler
	Session *api.SessionHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, sessionMiddleware)
	setupRoutes(engine, h, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, sessionMiddleware *middleware.SessionMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(sessionMiddleware.OptionalSession())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Provider redirect target.
	engine.GET("/booking/success", h.Payment.Success)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/quote", Handler: h.Room.Quote},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Submit},
			{Method: http.MethodGet, Path: "/attempts/:key", Handler: h.Booking.GetAttempt},
		})

		addRoutes(apiGroup.Group("/session"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Session.Get},
			{Method: http.MethodDelete, Path: "", Handler: h.Session.Delete},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(sessionMiddleware.RequireRole(session.RoleSupervisor))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/payment-attempts", Handler: h.Admin.ListPaymentAttempts},
				{Method: http.MethodGet, Path: "/payment-attempts/:ref", Handler: h.Admin.GetPaymentAttempt},
				{Method: http.MethodPost, Path: "/payment-attempts/sweep", Handler: h.Admin.Sweep},
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
