package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agriportal/analytics-api/internal/api/middleware"
	"github.com/agriportal/analytics-api/internal/core/gate"
	"github.com/agriportal/analytics-api/internal/core/ports"
)

// DashboardHandler serves the role-scoped dashboard payloads and the shared
// datasets. Route protection happens in the gate middleware; by the time a
// request reaches these handlers it is already authorized.
type DashboardHandler struct {
	analytics ports.AnalyticsService
}

func NewDashboardHandler(analytics ports.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// Farmer serves GET /farmer/dashboard.
//
// @Summary      Farmer dashboard overview
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  ports.FarmerOverview
// @Router       /farmer/dashboard [get]
func (h *DashboardHandler) Farmer(c echo.Context) error {
	overview, err := h.analytics.FarmerOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Government serves GET /government/dashboard.
//
// @Summary      Government dashboard overview
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  ports.GovernmentOverview
// @Router       /government/dashboard [get]
func (h *DashboardHandler) Government(c echo.Context) error {
	overview, err := h.analytics.GovernmentOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Business serves GET /business/dashboard.
//
// @Summary      Business dashboard overview
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  ports.BusinessOverview
// @Router       /business/dashboard [get]
func (h *DashboardHandler) Business(c echo.Context) error {
	overview, err := h.analytics.BusinessOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Home serves the legacy role-less GET /dashboard path: a redirect to the
// caller's own dashboard. The target comes from the one session snapshot the
// gate middleware stored, never from a second read.
func (h *DashboardHandler) Home(c echo.Context) error {
	decision := gate.HomeRedirect(middleware.SessionFromContext(c))
	return c.Redirect(http.StatusTemporaryRedirect, decision.RedirectTo)
}

// Weather serves GET /weather — the 30-day field conditions series.
func (h *DashboardHandler) Weather(c echo.Context) error {
	weather, err := h.analytics.Weather(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, weather)
}

// Market serves GET /market — current quotes with forecasts.
func (h *DashboardHandler) Market(c echo.Context) error {
	quotes, err := h.analytics.MarketQuotes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quotes)
}

// Regions serves GET /regions — the regional statistics dataset.
func (h *DashboardHandler) Regions(c echo.Context) error {
	regions, err := h.analytics.Regions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regions)
}
