package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coderhive/forecast-api/internal/core/domain"
)

// ctxClaims extracts the identity claims injected by the Auth middleware.
// Presence of the id claim proves the middleware ran; a route reaching a
// handler without it is a wiring bug and is rejected with 401.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	id, _ := c.Get("id").(string)
	if id == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	return domain.Claims{ID: id, Email: email, Role: role}, nil
}
