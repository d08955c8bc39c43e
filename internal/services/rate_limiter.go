package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// Rate-limited operations
const (
	RateOpSend   = "send"
	RateOpVerify = "verify"
)

// RateWindow configures one operation's cooldown window.
type RateWindow struct {
	Window time.Duration
	Limit  int
}

// RedisRateLimiter implements domain.RateLimiter with an expiring
// per-(operation, key) counter shared across instances.
type RedisRateLimiter struct {
	client  *redis.Client
	windows map[string]RateWindow
}

// incrWithWindow increments the counter and starts its expiry window in
// one round trip. A separate INCR/EXPIRE pair could be interrupted
// between the two calls, leaving a counter that never expires.
var incrWithWindow = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// NewRateLimiter creates a Redis-backed rate limiter. Operations absent
// from windows are never limited.
func NewRateLimiter(client *redis.Client, windows map[string]RateWindow) domain.RateLimiter {
	return &RedisRateLimiter{
		client:  client,
		windows: windows,
	}
}

// Allow implements domain.RateLimiter
func (l *RedisRateLimiter) Allow(ctx context.Context, operation, key string) (bool, int64, error) {
	cfg, ok := l.windows[operation]
	if !ok {
		return true, 0, nil
	}

	rlKey := fmt.Sprintf("rl:%s:%s", operation, key)

	count, err := incrWithWindow.Run(ctx, l.client, []string{rlKey}, cfg.Window.Milliseconds()).Int64()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment rate counter: %w", err)
	}

	if count <= int64(cfg.Limit) {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, rlKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to read rate window TTL: %w", err)
	}
	wait := int64(ttl.Seconds())
	if wait < 1 {
		wait = 1
	}
	return false, wait, nil
}
