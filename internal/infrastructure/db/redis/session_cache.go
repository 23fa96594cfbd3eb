package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/coderhive/forecast-api/internal/api/metrics"
	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/ports"
)

// Key layout. Three keys per subject so Clear can prove that every session
// artifact (profile blob, bearer token, provider descriptor) is gone.
const (
	userKeyFmt       = "session:user:%s"
	tokenKeyFmt      = "session:token:%s"
	descriptorKeyFmt = "session:descriptor:%s"

	eventChannel = "session:events"
)

// SessionCache is the Redis-backed session cache plus the cross-instance
// session event channel. It implements both ports.SessionCache and
// ports.SessionEvents.
type SessionCache struct {
	client *redis.Client
	log    zerolog.Logger

	mu        sync.Mutex
	subs      map[int]func(domain.SessionEvent)
	nextSubID int
	listening bool
}

func NewSessionCache(client *redis.Client, log zerolog.Logger) *SessionCache {
	return &SessionCache{
		client: client,
		log:    log,
		subs:   make(map[int]func(domain.SessionEvent)),
	}
}

// Store persists the session under the subject's keys. All keys are written
// in one transaction so readers never observe a half-written session.
func (c *SessionCache) Store(ctx context.Context, subject string, session domain.CachedSession) error {
	userBlob, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("marshal cached user: %w", err)
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.userKey(subject), userBlob, 0)
	pipe.Set(ctx, c.tokenKey(subject), session.Token, 0)
	if session.Session != nil {
		descBlob, err := json.Marshal(session.Session)
		if err != nil {
			return fmt.Errorf("marshal session descriptor: %w", err)
		}
		pipe.Set(ctx, c.descriptorKey(subject), descBlob, 0)
	} else {
		pipe.Del(ctx, c.descriptorKey(subject))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Read returns the cached session for the subject, or absent. It never
// fails: a missing entry is a miss, an unparseable one is treated as a miss
// and left in place (no auto-repair).
func (c *SessionCache) Read(ctx context.Context, subject string) (*domain.CachedSession, bool) {
	vals, err := c.client.MGet(ctx, c.userKey(subject), c.tokenKey(subject), c.descriptorKey(subject)).Result()
	if err != nil || len(vals) != 3 || vals[0] == nil {
		metrics.SessionCacheReadsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	userBlob, _ := vals[0].(string)
	var user domain.User
	if err := json.Unmarshal([]byte(userBlob), &user); err != nil {
		c.log.Warn().Str("subject", subject).Msg("corrupt cached user, treating as signed out")
		metrics.SessionCacheReadsTotal.WithLabelValues("corrupt").Inc()
		return nil, false
	}

	session := domain.CachedSession{User: user}
	if token, ok := vals[1].(string); ok {
		session.Token = token
	}
	if descBlob, ok := vals[2].(string); ok {
		var desc domain.SessionDescriptor
		if err := json.Unmarshal([]byte(descBlob), &desc); err == nil {
			session.Session = &desc
		}
	}

	metrics.SessionCacheReadsTotal.WithLabelValues("hit").Inc()
	return &session, true
}

// Clear removes every key belonging to the subject in one transaction, so
// no partial-clear state is ever observable.
func (c *SessionCache) Clear(ctx context.Context, subject string) error {
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, c.userKey(subject), c.tokenKey(subject), c.descriptorKey(subject))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Valid applies the validity heuristic: a descriptor is valid while its
// expiry sits more than the buffer window ahead of now; a cached user with
// no descriptor is optimistically valid.
func (c *SessionCache) Valid(ctx context.Context, subject string, now time.Time) bool {
	session, ok := c.Read(ctx, subject)
	if !ok {
		return false
	}
	if session.Session != nil {
		return !session.Session.ExpiresWithin(now, ports.ValidityBuffer)
	}
	return true
}

// Publish announces a session event on the shared channel. Local observers
// receive it through the same subscription as every other instance.
func (c *SessionCache) Publish(ctx context.Context, event domain.SessionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal session event: %w", err)
	}
	if err := c.client.Publish(ctx, eventChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish session event: %w", err)
	}
	return nil
}

// Subscribe registers an in-process observer for session events and starts
// the channel listener on first use. The returned func cancels the
// subscription. Delivery is best-effort: a malformed payload is dropped.
func (c *SessionCache) Subscribe(fn func(domain.SessionEvent)) (cancel func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = fn
	if !c.listening {
		c.listening = true
		go c.listen()
	}
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// listen consumes the shared event channel for the process lifetime and
// fans messages out to the registered observers.
func (c *SessionCache) listen() {
	ctx := context.Background()
	pubsub := c.client.Subscribe(ctx, eventChannel)
	for msg := range pubsub.Channel() {
		var event domain.SessionEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			c.log.Warn().Err(err).Msg("malformed session event dropped")
			continue
		}

		c.mu.Lock()
		observers := make([]func(domain.SessionEvent), 0, len(c.subs))
		for _, fn := range c.subs {
			observers = append(observers, fn)
		}
		c.mu.Unlock()

		for _, fn := range observers {
			fn(event)
		}
	}
}

func (c *SessionCache) userKey(subject string) string {
	return fmt.Sprintf(userKeyFmt, subject)
}

func (c *SessionCache) tokenKey(subject string) string {
	return fmt.Sprintf(tokenKeyFmt, subject)
}

func (c *SessionCache) descriptorKey(subject string) string {
	return fmt.Sprintf(descriptorKeyFmt, subject)
}
