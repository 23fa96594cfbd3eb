package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/ports"
)

// bcryptCost matches the work factor the platform has always used.
const bcryptCost = 10

const (
	msgRegisterFields = "name, email and password are required"
	msgLoginFields    = "email and password required"
)

// IdentityService implements registration and login against the user store,
// issuing HS256 bearer tokens. Tokens are signed without an expiry claim:
// a session lasts until the client discards its token or the secret rotates.
type IdentityService struct {
	repo      ports.UserRepository
	jwtSecret string
}

func NewIdentityService(repo ports.UserRepository, jwtSecret string) *IdentityService {
	return &IdentityService{repo: repo, jwtSecret: jwtSecret}
}

// Register creates a new identity and issues its first token. The role is
// optional; anything outside the allowed set is silently dropped and the
// default applies.
func (s *IdentityService) Register(ctx context.Context, name, email, password, role string) (*ports.AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.NewValidationError(msgRegisterFields)
	}
	if !domain.ValidRole(role) {
		role = domain.DefaultRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.signToken(created.ID, created.Email, created.EffectiveRole())
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates an email/password pair. Unknown email and wrong
// password both yield ErrInvalidCredentials so the response never reveals
// which check failed.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidationError(msgLoginFields)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Legacy records may have no role: substitute the default in the
	// token and response without persisting it.
	effective := *user
	effective.Role = user.EffectiveRole()

	token, err := s.signToken(effective.ID, effective.Email, effective.Role)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: &effective}, nil
}

func (s *IdentityService) signToken(id, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"role":  role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
