package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/ports"
)

// directoryLimit caps the manufacturer directory on the reseller overview.
const directoryLimit = 20

type DashboardService struct {
	users         ports.UserRepository
	manufacturers ports.ManufacturerRepository
	logger        zerolog.Logger
}

func NewDashboardService(users ports.UserRepository, manufacturers ports.ManufacturerRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{users: users, manufacturers: manufacturers, logger: logger}
}

// ResellerOverview assembles the reseller dashboard from the caller's
// profile and the manufacturer directory. A directory failure degrades to
// an empty listing rather than failing the whole page.
func (s *DashboardService) ResellerOverview(ctx context.Context, claims domain.Claims) (*ports.ResellerOverview, error) {
	name := claims.Email
	if user, err := s.users.FindByEmail(ctx, claims.Email); err == nil {
		name = user.Name
	}

	summaries, err := s.manufacturers.List(ctx, directoryLimit)
	if err != nil {
		s.logger.Warn().Err(err).Msg("manufacturer directory unavailable")
		summaries = nil
	}
	if summaries == nil {
		summaries = []domain.ManufacturerSummary{}
	}

	return &ports.ResellerOverview{
		Name:          name,
		Email:         claims.Email,
		Role:          claims.Role,
		Manufacturers: summaries,
	}, nil
}

// ManufacturerDashboard loads the full dashboard aggregate for the
// manufacturer account identified by email.
func (s *DashboardService) ManufacturerDashboard(ctx context.Context, email string) (*domain.Manufacturer, error) {
	m, err := s.manufacturers.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load manufacturer dashboard: %w", err)
	}
	return m, nil
}
