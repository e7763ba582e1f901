package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agriportal/analytics-api/internal/api/metrics"
	"github.com/agriportal/analytics-api/internal/core/domain"
	"github.com/agriportal/analytics-api/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login resolves a credential triple and opens the session.
//
// @Summary      Log in with email, password and role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be one of: farmer government business")
	}

	start := time.Now()
	ok := h.sessions.Login(c.Request().Context(), req.Email, req.Password, role)
	metrics.AuthDuration.WithLabelValues("login").Observe(time.Since(start).Seconds())

	if !ok {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		// Wrong email, wrong password and wrong role are indistinguishable.
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	sess := h.sessions.Current()
	return c.JSON(http.StatusOK, authResponse{OK: true, User: sess.User})
}

// Signup registers a fresh account and opens the session.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be one of: farmer government business")
	}

	start := time.Now()
	ok := h.sessions.Signup(c.Request().Context(), req.Email, req.Password, req.Name, role)
	metrics.AuthDuration.WithLabelValues("signup").Observe(time.Since(start).Seconds())

	if !ok {
		metrics.SignupsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusConflict, errorResponse{Error: "email already registered"})
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	sess := h.sessions.Current()
	return c.JSON(http.StatusCreated, authResponse{OK: true, User: sess.User})
}

// Logout closes the session. Always succeeds, even when nobody is signed in.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout()
	metrics.LogoutsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current authentication state.
//
// @Summary      Read the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess := h.sessions.Current()
	return c.JSON(http.StatusOK, sessionResponse{
		User:            sess.User,
		IsAuthenticated: sess.IsAuthenticated,
	})
}
