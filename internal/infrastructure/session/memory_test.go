package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/ports"
)

func testUser() domain.User {
	return domain.User{ID: "u1", Name: "Rita", Email: "rita@example.com", Role: domain.RoleReseller}
}

func TestMemoryCache_StoreAndRead(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "u1", domain.CachedSession{User: testUser(), Token: "tok-1"}))

	got, ok := cache.Read(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, "rita@example.com", got.User.Email)
	assert.Equal(t, "tok-1", got.Token)
	assert.Nil(t, got.Session)
}

func TestMemoryCache_ReadMissing(t *testing.T) {
	cache := NewMemoryCache()

	got, ok := cache.Read(context.Background(), "nobody")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryCache_CorruptEntryReadsAsAbsent(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "u1", domain.CachedSession{User: testUser(), Token: "tok-1"}))
	cache.Corrupt("u1")

	_, ok := cache.Read(ctx, "u1")
	assert.False(t, ok, "corrupt entry must read as signed out")

	// Not auto-repaired: still corrupt on the next read.
	_, ok = cache.Read(ctx, "u1")
	assert.False(t, ok)
}

func TestMemoryCache_ClearRemovesEverything(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "u1", domain.CachedSession{
		User:    testUser(),
		Token:   "tok-1",
		Session: &domain.SessionDescriptor{AccessToken: "at-1", ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}))
	require.NoError(t, cache.Clear(ctx, "u1"))

	got, ok := cache.Read(ctx, "u1")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, cache.Valid(ctx, "u1", time.Now()))
}

func TestMemoryCache_ValidityHeuristic(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()
	now := time.Now()

	// Descriptor well ahead of the buffer window: valid.
	require.NoError(t, cache.Store(ctx, "fresh", domain.CachedSession{
		User:    testUser(),
		Session: &domain.SessionDescriptor{ExpiresAt: now.Add(time.Hour).Unix()},
	}))
	assert.True(t, cache.Valid(ctx, "fresh", now))

	// Descriptor expiring inside the buffer window: already invalid.
	require.NoError(t, cache.Store(ctx, "closing", domain.CachedSession{
		User:    testUser(),
		Session: &domain.SessionDescriptor{ExpiresAt: now.Add(ports.ValidityBuffer - time.Minute).Unix()},
	}))
	assert.False(t, cache.Valid(ctx, "closing", now))

	// User cached with no descriptor at all: optimistically valid.
	require.NoError(t, cache.Store(ctx, "optimistic", domain.CachedSession{User: testUser()}))
	assert.True(t, cache.Valid(ctx, "optimistic", now))
}

func TestMemoryCache_PublishReachesSubscribers(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	var first, second []string
	cancelFirst := cache.Subscribe(func(e domain.SessionEvent) { first = append(first, e.Type) })
	cache.Subscribe(func(e domain.SessionEvent) { second = append(second, e.Type) })

	require.NoError(t, cache.Publish(ctx, domain.SessionEvent{ID: "e1", Type: domain.SessionEventLogin, Email: "rita@example.com"}))
	assert.Equal(t, []string{domain.SessionEventLogin}, first)
	assert.Equal(t, []string{domain.SessionEventLogin}, second)

	// A cancelled observer stops receiving; the rest continue.
	cancelFirst()
	require.NoError(t, cache.Publish(ctx, domain.SessionEvent{ID: "e2", Type: domain.SessionEventLogout, Email: "rita@example.com"}))
	assert.Equal(t, []string{domain.SessionEventLogin}, first)
	assert.Equal(t, []string{domain.SessionEventLogin, domain.SessionEventLogout}, second)
}
