package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/agriportal/analytics-api/internal/core/domain"
)

type fixedSessions struct {
	sess domain.Session
}

func (f *fixedSessions) Login(context.Context, string, string, domain.Role) bool { return false }
func (f *fixedSessions) Signup(context.Context, string, string, string, domain.Role) bool {
	return false
}
func (f *fixedSessions) Logout()                 {}
func (f *fixedSessions) Current() domain.Session { return f.sess }

func runGate(t *testing.T, sess domain.Session, required domain.Role) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Gate(&fixedSessions{sess: sess}, required)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestGate_AnonymousRedirectsToLanding(t *testing.T) {
	rec, called := runGate(t, domain.Anonymous(), domain.RoleFarmer)

	if called {
		t.Fatalf("next handler must not run for anonymous callers")
	}
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to landing, got %q", loc)
	}
}

func TestGate_WrongRoleRedirectsHome(t *testing.T) {
	sess := domain.Authenticated(&domain.User{ID: "1", Role: domain.RoleFarmer})
	rec, called := runGate(t, sess, domain.RoleGovernment)

	if called {
		t.Fatalf("next handler must not run for the wrong role")
	}
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/farmer/dashboard" {
		t.Fatalf("expected redirect to the caller's own dashboard, got %q", loc)
	}
}

func TestGate_MatchingRoleAllows(t *testing.T) {
	sess := domain.Authenticated(&domain.User{ID: "1", Role: domain.RoleFarmer})
	rec, called := runGate(t, sess, domain.RoleFarmer)

	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_StoresSnapshotInContext(t *testing.T) {
	sess := domain.Authenticated(&domain.User{ID: "1", Email: "farmer@demo.com", Role: domain.RoleFarmer})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Gate(&fixedSessions{sess: sess}, "")
	handler := mw(func(c echo.Context) error {
		got := SessionFromContext(c)
		if got.User == nil || got.User.Email != "farmer@demo.com" {
			t.Fatalf("snapshot missing from context: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
