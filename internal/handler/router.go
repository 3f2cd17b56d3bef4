package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/handler/api"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	fieldHandler *api.FieldHandler,
	bookingHandler *api.BookingHandler,
	wizardHandler *api.WizardHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, fieldHandler, bookingHandler, wizardHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	fieldHandler *api.FieldHandler,
	bookingHandler *api.BookingHandler,
	wizardHandler *api.WizardHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		fields := apiGroup.Group("/fields")
		{
			addRoutes(fields, []route{
				{Method: http.MethodGet, Path: "", Handler: fieldHandler.ListFields},
				{Method: http.MethodGet, Path: "/:id", Handler: fieldHandler.GetField},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: fieldHandler.GetAvailability},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
			})
		}

		wizardGroup := apiGroup.Group("/wizard")
		wizardGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wizardGroup, []route{
				{Method: http.MethodPost, Path: "", Handler: wizardHandler.Start},
				{Method: http.MethodGet, Path: "", Handler: wizardHandler.State},
				{Method: http.MethodDelete, Path: "", Handler: wizardHandler.Abandon},
				{Method: http.MethodPost, Path: "/field", Handler: wizardHandler.SelectField},
				{Method: http.MethodGet, Path: "/schedule", Handler: wizardHandler.CheckSchedule},
				{Method: http.MethodPost, Path: "/schedule", Handler: wizardHandler.SelectSchedule},
				{Method: http.MethodPost, Path: "/back", Handler: wizardHandler.Back},
				{Method: http.MethodPost, Path: "/submit", Handler: wizardHandler.Submit},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: adminHandler.UpdateBookingStatus},
				{Method: http.MethodPatch, Path: "/bookings/:id/payment-status", Handler: adminHandler.UpdatePaymentStatus},
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
