package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agriportal/analytics-api/internal/core/service"
	"github.com/agriportal/analytics-api/internal/infrastructure/registry"
)

func newAuthFixture() (*echo.Echo, *AuthHandler) {
	e := echo.New()
	e.Validator = NewValidator()
	sessions := service.NewSessionService(registry.NewMemory(registry.DemoSeed()), 0, zerolog.Nop())
	return e, NewAuthHandler(sessions)
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e, h := newAuthFixture()

	c, rec := postJSON(e, "/auth/login", `{"email":"farmer@demo.com","password":"demo123","role":"farmer"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["name"] != "Raj Patel" || user["role"] != "farmer" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password must never appear in the session payload")
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e, h := newAuthFixture()

	for _, body := range []string{
		`{"email":"farmer@demo.com","password":"wrong","role":"farmer"}`,
		`{"email":"farmer@demo.com","password":"demo123","role":"business"}`,
		`{"email":"ghost@demo.com","password":"demo123","role":"farmer"}`,
	} {
		c, rec := postJSON(e, "/auth/login", body)
		if err := h.Login(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d for %s", rec.Code, body)
		}
		// Every failure cause produces the same body.
		if !strings.Contains(rec.Body.String(), "invalid credentials") {
			t.Fatalf("unexpected error body: %s", rec.Body.String())
		}
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e, h := newAuthFixture()

	cases := []string{
		`{"email":"not-an-email","password":"demo123","role":"farmer"}`,
		`{"email":"farmer@demo.com","password":"","role":"farmer"}`,
		`{"email":"farmer@demo.com","password":"demo123","role":"admin"}`,
	}
	for _, body := range cases {
		c, _ := postJSON(e, "/auth/login", body)
		err := h.Login(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %v", body, err)
		}
	}
}

func TestAuthHandler_Signup_SuccessThenDuplicate(t *testing.T) {
	e, h := newAuthFixture()

	c, rec := postJSON(e, "/auth/signup", `{"email":"new@x.com","password":"secret1","name":"Alice","role":"business"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	c, rec = postJSON(e, "/auth/signup", `{"email":"new@x.com","password":"secret2","name":"Bob","role":"business"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}
}

func TestAuthHandler_LogoutAndSession(t *testing.T) {
	e, h := newAuthFixture()

	c, rec := postJSON(e, "/auth/login", `{"email":"gov@demo.com","password":"demo123","role":"government"}`)
	if err := h.Login(c); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("setup login failed: %v / %d", err, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec = httptest.NewRecorder()
	if err := h.Session(e.NewContext(req, rec)); err != nil {
		t.Fatalf("session read failed: %v", err)
	}
	var sess map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if sess["is_authenticated"] != true {
		t.Fatalf("expected authenticated session, got %+v", sess)
	}

	rec = httptest.NewRecorder()
	if err := h.Logout(e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), rec)); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	if err := h.Session(e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/session", nil), rec)); err != nil {
		t.Fatalf("session read failed: %v", err)
	}
	sess = map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if sess["is_authenticated"] != false || sess["user"] != nil {
		t.Fatalf("expected anonymous session after logout, got %+v", sess)
	}
}
