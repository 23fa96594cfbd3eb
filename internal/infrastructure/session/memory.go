// Package session provides an in-memory implementation of the session
// cache contract. It backs tests and single-process deployments where
// Redis is not available; the semantics mirror the Redis implementation.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/ports"
)

type entry struct {
	userBlob       []byte
	token          string
	descriptorBlob []byte
}

// MemoryCache implements ports.SessionCache and ports.SessionEvents with a
// mutex-guarded map. Entries hold serialized blobs, like the Redis cache,
// so corrupt-data behavior can be exercised the same way.
type MemoryCache struct {
	mu        sync.Mutex
	entries   map[string]entry
	subs      map[int]func(domain.SessionEvent)
	nextSubID int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		subs:    make(map[int]func(domain.SessionEvent)),
	}
}

func (c *MemoryCache) Store(_ context.Context, subject string, session domain.CachedSession) error {
	userBlob, err := json.Marshal(session.User)
	if err != nil {
		return err
	}
	e := entry{userBlob: userBlob, token: session.Token}
	if session.Session != nil {
		descBlob, err := json.Marshal(session.Session)
		if err != nil {
			return err
		}
		e.descriptorBlob = descBlob
	}

	c.mu.Lock()
	c.entries[subject] = e
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Read(_ context.Context, subject string) (*domain.CachedSession, bool) {
	c.mu.Lock()
	e, ok := c.entries[subject]
	c.mu.Unlock()
	if !ok {
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal(e.userBlob, &user); err != nil {
		// Corrupt entries read as signed out and stay in place.
		return nil, false
	}

	session := domain.CachedSession{User: user, Token: e.token}
	if e.descriptorBlob != nil {
		var desc domain.SessionDescriptor
		if err := json.Unmarshal(e.descriptorBlob, &desc); err == nil {
			session.Session = &desc
		}
	}
	return &session, true
}

func (c *MemoryCache) Clear(_ context.Context, subject string) error {
	c.mu.Lock()
	delete(c.entries, subject)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Valid(ctx context.Context, subject string, now time.Time) bool {
	session, ok := c.Read(ctx, subject)
	if !ok {
		return false
	}
	if session.Session != nil {
		return !session.Session.ExpiresWithin(now, ports.ValidityBuffer)
	}
	return true
}

// Publish delivers the event synchronously to every subscriber, matching
// the same-tab custom-event semantics the contract asks for.
func (c *MemoryCache) Publish(_ context.Context, event domain.SessionEvent) error {
	c.mu.Lock()
	observers := make([]func(domain.SessionEvent), 0, len(c.subs))
	for _, fn := range c.subs {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(event)
	}
	return nil
}

func (c *MemoryCache) Subscribe(fn func(domain.SessionEvent)) (cancel func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Corrupt overwrites the subject's cached user blob with unparseable data.
// Test hook for the corrupt-entry contract.
func (c *MemoryCache) Corrupt(subject string) {
	c.mu.Lock()
	if e, ok := c.entries[subject]; ok {
		e.userBlob = []byte("{not-json")
		c.entries[subject] = e
	}
	c.mu.Unlock()
}
