// Package loginguard tracks failed login attempts in redis and temporarily
// locks out an email after repeated failures. Strikes live under a TTL key,
// so a lockout clears itself when the window lapses.
package loginguard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login:strikes:"

type Guard struct {
	rdb     *redis.Client
	strikes int
	window  time.Duration
}

func New(rdb *redis.Client, strikes int, window time.Duration) *Guard {
	return &Guard{rdb: rdb, strikes: strikes, window: window}
}

// Blocked reports whether email has reached the strike limit within the
// current window. A nil guard never blocks, which is how the guard is
// disabled when no redis address is configured.
func (g *Guard) Blocked(ctx context.Context, email string) (bool, error) {
	if g == nil {
		return false, nil
	}
	count, err := g.rdb.Get(ctx, keyPrefix+email).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read login strikes: %w", err)
	}
	return count >= g.strikes, nil
}

// RecordFailure adds a strike for email. The window starts at the first
// strike and is not extended by later ones.
func (g *Guard) RecordFailure(ctx context.Context, email string) error {
	if g == nil {
		return nil
	}
	key := keyPrefix + email
	count, err := g.rdb.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	if count == 1 {
		if err := g.rdb.Expire(ctx, key, g.window).Err(); err != nil {
			return fmt.Errorf("failed to set strike window: %w", err)
		}
	}
	return nil
}

// Reset clears the strike counter after a successful login.
func (g *Guard) Reset(ctx context.Context, email string) error {
	if g == nil {
		return nil
	}
	if err := g.rdb.Del(ctx, keyPrefix+email).Err(); err != nil {
		return fmt.Errorf("failed to reset login strikes: %w", err)
	}
	return nil
}
