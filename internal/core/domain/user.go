package domain

import "time"

const (
	RoleReseller     = "reseller"
	RoleManufacturer = "manufacturer"

	// DefaultRole applies when a registration carries no role (or an
	// invalid one) and when a legacy record has none persisted.
	DefaultRole = RoleReseller
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleReseller || role == RoleManufacturer
}

// User models an identity record: a registered reseller or manufacturer.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EffectiveRole returns the persisted role, or DefaultRole for legacy
// records created before roles existed. The fallback is never written back.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return DefaultRole
	}
	return u.Role
}
