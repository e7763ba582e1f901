package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agriportal/analytics-api/internal/api/metrics"
	"github.com/agriportal/analytics-api/internal/core/domain"
	"github.com/agriportal/analytics-api/internal/core/gate"
	"github.com/agriportal/analytics-api/internal/core/ports"
)

const sessionKey = "session"

// Gate protects a route group with the access gate. required may be empty,
// in which case any authenticated session passes. The gate is consulted
// fresh on every request from a single session snapshot; a denial is always
// a redirect, never an error.
func Gate(sessions ports.SessionService, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := sessions.Current()

			decision := gate.Authorize(sess, required)
			if !decision.Allow {
				metrics.GateDecisionsTotal.WithLabelValues(outcome(decision)).Inc()
				return c.Redirect(http.StatusTemporaryRedirect, decision.RedirectTo)
			}

			metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext returns the snapshot stored by the Gate middleware.
// Handlers behind the gate use this instead of re-reading the live session,
// so one request never observes two different authentication states.
func SessionFromContext(c echo.Context) domain.Session {
	sess, _ := c.Get(sessionKey).(domain.Session)
	return sess
}

func outcome(d gate.Decision) string {
	if d.RedirectTo == gate.LandingPath {
		return "redirect_landing"
	}
	return "redirect_home"
}
