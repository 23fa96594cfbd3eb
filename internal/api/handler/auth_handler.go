package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/coderhive/forecast-api/internal/api/metrics"
	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/ports"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	identity ports.IdentityService
	sessions ports.SessionCache
	events   ports.SessionEvents
	log      zerolog.Logger
}

func NewAuthHandler(identity ports.IdentityService, sessions ports.SessionCache, events ports.SessionEvents, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{identity: identity, sessions: sessions, events: events, log: log}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates a new identity and issues its first token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.identity.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(res.User.Role).Inc()
	h.openSession(c, res)

	return c.JSON(http.StatusCreated, authResponse{Token: res.Token, User: res.User})
}

// Login authenticates an email/password pair and issues a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.openSession(c, res)

	return c.JSON(http.StatusOK, authResponse{Token: res.Token, User: res.User})
}

// Logout clears the caller's cached session and announces the sign-out.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.sessions.Clear(ctx, claims.ID); err != nil {
		return err
	}
	h.publish(c, domain.SessionEventLogout, claims.Email)

	return c.NoContent(http.StatusNoContent)
}

// openSession caches the fresh session and announces the login. Cache and
// event failures are logged, not surfaced: the credentials were accepted
// and the client already holds a valid token.
func (h *AuthHandler) openSession(c echo.Context, res *ports.AuthResult) {
	ctx := c.Request().Context()
	if err := h.sessions.Store(ctx, res.User.ID, domain.CachedSession{User: *res.User, Token: res.Token}); err != nil {
		h.log.Warn().Err(err).Str("email", res.User.Email).Msg("session cache write failed")
	}
	h.publish(c, domain.SessionEventLogin, res.User.Email)
}

func (h *AuthHandler) publish(c echo.Context, eventType, email string) {
	event := domain.SessionEvent{
		ID:    uuid.NewString(),
		Type:  eventType,
		Email: email,
		At:    time.Now().UTC(),
	}
	if err := h.events.Publish(c.Request().Context(), event); err != nil {
		h.log.Warn().Err(err).Str("type", eventType).Msg("session event publish failed")
	} else {
		metrics.SessionEventsTotal.WithLabelValues(eventType).Inc()
	}
}
