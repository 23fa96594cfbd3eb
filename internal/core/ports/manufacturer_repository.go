package ports

import (
	"context"

	"github.com/coderhive/forecast-api/internal/core/domain"
)

// ManufacturerRepository reads manufacturer dashboard aggregates. The
// aggregates are written by out-of-band ingestion, never by this service.
type ManufacturerRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Manufacturer, error)
	List(ctx context.Context, limit int) ([]domain.ManufacturerSummary, error)
}
