package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// AttemptLimiter counts failed logins per key inside a cooldown window.
type AttemptLimiter interface {
	// Remaining reports how long key stays locked; zero means not locked.
	Remaining(ctx context.Context, key string) (time.Duration, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

func attemptKey(key string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(key))
}

// RedisLimiter keeps the attempt counters in Redis so every API instance shares them.
type RedisLimiter struct {
	client   *redis.Client
	max      int
	cooldown time.Duration
}

func NewRedisLimiter(client *redis.Client, max int, cooldown time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, max: max, cooldown: cooldown}
}

func (r *RedisLimiter) Remaining(ctx context.Context, key string) (time.Duration, error) {
	k := attemptKey(key)
	count, err := r.client.Get(ctx, k).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read login attempts: %w", err)
	}
	if count < r.max {
		return 0, nil
	}
	ttl, err := r.client.TTL(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read login cooldown: %w", err)
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

func (r *RedisLimiter) Fail(ctx context.Context, key string) error {
	k := attemptKey(key)
	pipe := r.client.TxPipeline()
	pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, r.cooldown)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	return nil
}

func (r *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, attemptKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}

// MemoryLimiter is used when no Redis is configured.
type MemoryLimiter struct {
	mu       sync.Mutex
	max      int
	cooldown time.Duration
	now      func() time.Time
	entries  map[string]*attempts
}

type attempts struct {
	count   int
	expires time.Time
}

func NewMemoryLimiter(max int, cooldown time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:      max,
		cooldown: cooldown,
		now:      time.Now,
		entries:  make(map[string]*attempts),
	}
}

func (m *MemoryLimiter) Remaining(_ context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.live(attemptKey(key))
	if e == nil || e.count < m.max {
		return 0, nil
	}
	return e.expires.Sub(m.now()), nil
}

func (m *MemoryLimiter) Fail(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := attemptKey(key)
	e := m.live(k)
	if e == nil {
		e = &attempts{expires: m.now().Add(m.cooldown)}
		m.entries[k] = e
	}
	e.count++
	return nil
}

func (m *MemoryLimiter) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, attemptKey(key))
	return nil
}

// live returns the entry for k, dropping it when its window has passed. Caller holds mu.
func (m *MemoryLimiter) live(k string) *attempts {
	e, ok := m.entries[k]
	if !ok {
		return nil
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, k)
		return nil
	}
	return e
}
