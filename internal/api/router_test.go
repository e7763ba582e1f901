package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agriportal/analytics-api/internal/core/service"
	"github.com/agriportal/analytics-api/internal/infrastructure/agridata"
	"github.com/agriportal/analytics-api/internal/infrastructure/registry"
)

// The full login → navigate → logout cycle against the real router. A single
// Echo instance is shared across the steps: the Prometheus middleware
// registers its collectors with the default registry and must only be built
// once per process.
func TestRouter_SessionLifecycle(t *testing.T) {
	sessions := service.NewSessionService(registry.NewMemory(registry.DemoSeed()), 0, zerolog.Nop())
	analytics := service.NewAnalyticsService(agridata.NewStore(time.Now()), zerolog.Nop())
	e := NewRouter(sessions, analytics, zerolog.Nop())

	do := func(method, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("anonymous navigation lands", func(t *testing.T) {
		for _, path := range []string{"/farmer/dashboard", "/government/dashboard", "/business/dashboard", "/dashboard", "/weather"} {
			rec := do(http.MethodGet, path, "")
			if rec.Code != http.StatusTemporaryRedirect {
				t.Fatalf("%s: expected 307, got %d", path, rec.Code)
			}
			if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
				t.Fatalf("%s: expected redirect to landing, got %q", path, loc)
			}
		}
	})

	t.Run("login opens the session", func(t *testing.T) {
		rec := do(http.MethodPost, "/auth/login", `{"email":"farmer@demo.com","password":"demo123","role":"farmer"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("own dashboard is served", func(t *testing.T) {
		rec := do(http.MethodGet, "/farmer/dashboard", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var overview map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if overview["total_area_acres"] != 56.5 {
			t.Fatalf("unexpected overview: %+v", overview)
		}
	})

	t.Run("foreign dashboard redirects home", func(t *testing.T) {
		rec := do(http.MethodGet, "/government/dashboard", "")
		if rec.Code != http.StatusTemporaryRedirect {
			t.Fatalf("expected 307, got %d", rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/farmer/dashboard" {
			t.Fatalf("expected redirect to own dashboard, got %q", loc)
		}
	})

	t.Run("legacy dashboard path resolves role home", func(t *testing.T) {
		rec := do(http.MethodGet, "/dashboard", "")
		if rec.Code != http.StatusTemporaryRedirect {
			t.Fatalf("expected 307, got %d", rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/farmer/dashboard" {
			t.Fatalf("expected /farmer/dashboard, got %q", loc)
		}
	})

	t.Run("shared datasets are served", func(t *testing.T) {
		for _, path := range []string{"/weather", "/market", "/regions"} {
			if rec := do(http.MethodGet, path, ""); rec.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, rec.Code)
			}
		}
	})

	t.Run("logout closes the session", func(t *testing.T) {
		if rec := do(http.MethodPost, "/auth/logout", ""); rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		rec := do(http.MethodGet, "/dashboard", "")
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
			t.Fatalf("expected landing redirect after logout, got %q", loc)
		}
	})

	t.Run("probes", func(t *testing.T) {
		if rec := do(http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
			t.Fatalf("health: expected 200, got %d", rec.Code)
		}
		if rec := do(http.MethodGet, "/metrics", ""); rec.Code != http.StatusOK {
			t.Fatalf("metrics: expected 200, got %d", rec.Code)
		}
	})
}
