package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/service"
	"github.com/coderhive/forecast-api/internal/infrastructure/session"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := *user
	copy.ID = "u1"
	r.users[copy.Email] = &copy
	return &copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthHandler() (*AuthHandler, *session.MemoryCache) {
	cache := session.NewMemoryCache()
	identity := service.NewIdentityService(newStubUserRepo(), "secret")
	return NewAuthHandler(identity, cache, cache, zerolog.Nop()), cache
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_DefaultRole(t *testing.T) {
	e := echo.New()
	handler, cache := newTestAuthHandler()

	var events []domain.SessionEvent
	cache.Subscribe(func(ev domain.SessionEvent) { events = append(events, ev) })

	c, rec := postJSON(e, "/api/auth/register", `{"name":"A","email":"a@x.com","password":"p1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] == "" {
		t.Fatalf("expected token in response")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["role"] != domain.RoleReseller {
		t.Fatalf("expected default role, got %v", user["role"])
	}
	if _, hasHash := user["password"]; hasHash {
		t.Fatalf("password material leaked into response")
	}

	// A fresh session lands in the cache and a login event goes out.
	if _, ok := cache.Read(context.Background(), "u1"); !ok {
		t.Fatalf("session not cached after registration")
	}
	if len(events) != 1 || events[0].Type != domain.SessionEventLogin {
		t.Fatalf("expected one login event, got %+v", events)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := echo.New()
	handler, _ := newTestAuthHandler()

	c, _ := postJSON(e, "/api/auth/register", `{"name":"A","email":"a@x.com","password":"p1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	c, _ = postJSON(e, "/api/auth/register", `{"name":"B","email":"a@x.com","password":"p2"}`)
	err := handler.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := echo.New()
	handler, _ := newTestAuthHandler()

	c, _ := postJSON(e, "/api/auth/register", `{"email":"a@x.com"}`)
	err := handler.Register(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	e := echo.New()
	handler, _ := newTestAuthHandler()

	c, _ := postJSON(e, "/api/auth/login", `{"email":"ghost@x.com","password":"p"}`)
	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	handler, cache := newTestAuthHandler()

	c, _ := postJSON(e, "/api/auth/register", `{"name":"A","email":"a@x.com","password":"p1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	c, rec := postJSON(e, "/api/auth/login", `{"email":"a@x.com","password":"p1"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !cache.Valid(context.Background(), "u1", time.Now()) {
		t.Fatalf("expected valid cached session after login")
	}
}

func TestAuthHandler_Logout_ClearsSessionAndAnnounces(t *testing.T) {
	e := echo.New()
	handler, cache := newTestAuthHandler()

	c, _ := postJSON(e, "/api/auth/register", `{"name":"A","email":"a@x.com","password":"p1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	var events []domain.SessionEvent
	cache.Subscribe(func(ev domain.SessionEvent) { events = append(events, ev) })

	c, rec := postJSON(e, "/api/auth/logout", "")
	c.Set("id", "u1")
	c.Set("email", "a@x.com")
	c.Set("role", domain.RoleReseller)
	if err := handler.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	if _, ok := cache.Read(context.Background(), "u1"); ok {
		t.Fatalf("session still cached after logout")
	}
	if len(events) != 1 || events[0].Type != domain.SessionEventLogout {
		t.Fatalf("expected one logout event, got %+v", events)
	}
}

func TestAuthHandler_Logout_RequiresClaims(t *testing.T) {
	e := echo.New()
	handler, _ := newTestAuthHandler()

	c, _ := postJSON(e, "/api/auth/logout", "")
	err := handler.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
