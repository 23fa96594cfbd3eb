package ports

import (
	"context"

	"github.com/coderhive/forecast-api/internal/core/domain"
)

// AuthResult is the outcome of a successful register or login: a signed
// bearer token plus the public user projection.
type AuthResult struct {
	Token string
	User  *domain.User
}

// IdentityService validates credentials against the user store and issues
// bearer tokens. The single identity-provider surface of the system: both
// the HTTP handlers and the session cache go through it.
type IdentityService interface {
	Register(ctx context.Context, name, email, password, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
