// Package expiry removes links once their lifetime is over. Redis holds one
// marker key per expiring link; its expiry event triggers the cascade.
package expiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "expire:"

// Cascade removes an expired link and what depends on it. It must tolerate
// links that are already gone.
type Cascade interface {
	Expire(ctx context.Context, code string) error
}

func Key(code string) string {
	return keyPrefix + code
}

func CodeFromKey(key string) (string, bool) {
	code, ok := strings.CutPrefix(key, keyPrefix)
	if !ok || code == "" {
		return "", false
	}
	return code, true
}

// Channel is the keyevent channel Redis publishes expirations of db on.
func Channel(db int) string {
	return fmt.Sprintf("__keyevent@%d__:expired", db)
}

type Scheduler struct {
	client *redis.Client
}

func NewScheduler(client *redis.Client) *Scheduler {
	return &Scheduler{client: client}
}

func (s *Scheduler) Schedule(ctx context.Context, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, Key(code), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to set expiry marker: %w", err)
	}
	return nil
}
