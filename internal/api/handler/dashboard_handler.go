package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coderhive/forecast-api/internal/core/ports"
)

// DashboardHandler serves the role-scoped dashboard endpoints and /api/me.
type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Me returns the identity attached to the bearer token.
//
// @Summary      Current user
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Claims
// @Failure      401  {object}  messageResponse
// @Router       /api/me [get]
func (h *DashboardHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}

// Reseller returns the reseller dashboard overview.
//
// @Summary      Reseller dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ResellerOverview
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/dashboard/reseller [get]
func (h *DashboardHandler) Reseller(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	overview, err := h.dashboards.ResellerOverview(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Manufacturer returns the manufacturer dashboard aggregate.
//
// @Summary      Manufacturer dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Manufacturer
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/dashboard/manufacturer [get]
func (h *DashboardHandler) Manufacturer(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboards.ManufacturerDashboard(c.Request().Context(), claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}
