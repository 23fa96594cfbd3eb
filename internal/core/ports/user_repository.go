package ports

import (
	"context"

	"github.com/coderhive/forecast-api/internal/core/domain"
)

// UserRepository defines the interface for identity persistence. Email
// uniqueness is enforced by the store itself; Create must surface
// domain.ErrUserExists when the constraint rejects a duplicate.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
