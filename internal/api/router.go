package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/agriportal/analytics-api/internal/api/handler"
	"github.com/agriportal/analytics-api/internal/api/middleware"
	"github.com/agriportal/analytics-api/internal/core/domain"
	"github.com/agriportal/analytics-api/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(sessions ports.SessionService, analytics ports.AnalyticsService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("agriportal"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(sessions)
	dashHandler := handler.NewDashboardHandler(analytics)
	healthHandler := handler.NewHealthHandler()

	// --- Auth routes (no gate: these are how a session is opened) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Role-scoped dashboards ---
	farmer := e.Group("/farmer", middleware.Gate(sessions, domain.RoleFarmer))
	farmer.GET("/dashboard", dashHandler.Farmer)

	government := e.Group("/government", middleware.Gate(sessions, domain.RoleGovernment))
	government.GET("/dashboard", dashHandler.Government)

	business := e.Group("/business", middleware.Gate(sessions, domain.RoleBusiness))
	business.GET("/dashboard", dashHandler.Business)

	// --- Authenticated, role-free routes ---
	authed := middleware.Gate(sessions, "")
	e.GET("/dashboard", dashHandler.Home, authed) // legacy path: redirect to role home
	e.GET("/weather", dashHandler.Weather, authed)
	e.GET("/market", dashHandler.Market, authed)
	e.GET("/regions", dashHandler.Regions, authed)

	// --- Observability ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
