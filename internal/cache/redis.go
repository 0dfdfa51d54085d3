package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the tier shared by every replica. Failures degrade to misses.
type Redis struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

func NewRedis(client *redis.Client, prefix string, logger *slog.Logger) *Redis {
	return &Redis{client: client, prefix: prefix, logger: logger}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis cache get failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return nil, false
	}
	return val, true
}

func (c *Redis) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, c.prefix+key, val, ttl).Err(); err != nil {
		c.logger.Warn("redis cache set failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

func (c *Redis) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		c.logger.Warn("redis cache delete failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
