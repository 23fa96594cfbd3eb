package ports

import (
	"context"

	"github.com/coderhive/forecast-api/internal/core/domain"
)

// ResellerOverview is the reseller dashboard payload: the caller's own
// profile projection plus the manufacturer directory.
type ResellerOverview struct {
	Name          string                       `json:"name"`
	Email         string                       `json:"email"`
	Role          string                       `json:"role"`
	Manufacturers []domain.ManufacturerSummary `json:"manufacturers"`
}

type DashboardService interface {
	ResellerOverview(ctx context.Context, claims domain.Claims) (*ResellerOverview, error)
	ManufacturerDashboard(ctx context.Context, email string) (*domain.Manufacturer, error)
}
