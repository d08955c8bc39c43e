package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	session := &domain.Session{
		ID:        "sess-123",
		UserID:    1,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.FindByID(ctx, "sess-123")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.UserID, got.UserID)
}

func TestSessionNotFound(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	_, err := repo.FindByID(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionExpiredPayloadIsRemoved(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	// Stored with a Redis TTL longer than its logical expiry.
	session := &domain.Session{
		ID:        "sess-stale",
		UserID:    1,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	_, err := repo.FindByID(ctx, "sess-stale")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	// The stale record is gone for good.
	_, err = repo.FindByID(ctx, "sess-stale")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionDelete(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	session := &domain.Session{
		ID:        "sess-123",
		UserID:    1,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))
	require.NoError(t, repo.Delete(ctx, "sess-123"))

	_, err := repo.FindByID(ctx, "sess-123")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRedisTTLEviction(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Minute)

	session := &domain.Session{
		ID:        "sess-123",
		UserID:    1,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	mr.FastForward(2 * time.Minute)

	_, err := repo.FindByID(ctx, "sess-123")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
