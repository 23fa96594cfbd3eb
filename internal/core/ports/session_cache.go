package ports

import (
	"context"
	"time"

	"github.com/coderhive/forecast-api/internal/core/domain"
)

// SessionCache is the single source of truth for "who is the current user",
// readable without a round-trip to the identity service. Entries are keyed
// by subject (the identity id).
//
// Read never fails: a missing or unparseable entry is reported as absent,
// and corrupt data is not auto-repaired. Clear must remove every related
// key so that no partial-clear state is observable by callers.
type SessionCache interface {
	Store(ctx context.Context, subject string, session domain.CachedSession) error
	Read(ctx context.Context, subject string) (*domain.CachedSession, bool)
	Clear(ctx context.Context, subject string) error

	// Valid applies the session validity heuristic: a descriptor with an
	// expiry is valid iff it expires more than ValidityBuffer after now;
	// a cached user without a descriptor is optimistically valid.
	Valid(ctx context.Context, subject string, now time.Time) bool
}

// ValidityBuffer keeps callers from racing a request against a token that
// is about to expire.
const ValidityBuffer = 5 * time.Minute

// SessionEvents propagates login/logout announcements to cache observers.
// Subscribe registers an in-process observer and returns its cancel func.
// Publish additionally fans out across instances when the implementation
// is backed by a shared channel (Redis pub/sub).
type SessionEvents interface {
	Publish(ctx context.Context, event domain.SessionEvent) error
	Subscribe(fn func(domain.SessionEvent)) (cancel func())
}
