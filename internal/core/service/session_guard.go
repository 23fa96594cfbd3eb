package service

import (
	"context"

	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/ports"
)

// GuardState is the lifecycle state of a SessionGuard.
type GuardState int

const (
	GuardLoading GuardState = iota
	GuardAuthenticated
	GuardRedirecting
)

const (
	SignInPath = "/auth"
	HomePath   = "/"
)

// GuardDecision is the terminal outcome of a guard evaluation. RedirectTo
// is set only when State is GuardRedirecting.
type GuardDecision struct {
	State      GuardState
	RedirectTo string
	User       *domain.User
}

// SessionGuard gates a role-scoped surface on the cached session. It makes
// a single synchronous decision per instance: the first Decide call reads
// the cache once and the result sticks until the guard is rebuilt. It never
// re-verifies with the issuer (trust-on-read).
type SessionGuard struct {
	cache    ports.SessionCache
	state    GuardState
	decision GuardDecision
}

func NewSessionGuard(cache ports.SessionCache) *SessionGuard {
	return &SessionGuard{cache: cache, state: GuardLoading}
}

// State returns the guard's current state.
func (g *SessionGuard) State() GuardState {
	return g.state
}

// Decide reads the session cache for the subject and resolves the guard:
//
//   - no cached user            → Redirecting to the sign-in page
//   - role mismatch             → Redirecting to home
//   - user present, role fits   → Authenticated, user attached
//
// requiredRole may be empty, in which case any authenticated user passes.
func (g *SessionGuard) Decide(ctx context.Context, subject, requiredRole string) GuardDecision {
	if g.state != GuardLoading {
		return g.decision
	}

	cached, ok := g.cache.Read(ctx, subject)
	if !ok {
		g.state = GuardRedirecting
		g.decision = GuardDecision{State: GuardRedirecting, RedirectTo: SignInPath}
		return g.decision
	}

	if requiredRole != "" && cached.User.EffectiveRole() != requiredRole {
		g.state = GuardRedirecting
		g.decision = GuardDecision{State: GuardRedirecting, RedirectTo: HomePath}
		return g.decision
	}

	user := cached.User
	g.state = GuardAuthenticated
	g.decision = GuardDecision{State: GuardAuthenticated, User: &user}
	return g.decision
}
