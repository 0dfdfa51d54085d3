package expiry

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"

	"linkly/internal/config"
)

const cascadeTimeout = 10 * time.Second

type Listener struct {
	client  *redis.Client
	cascade Cascade
	cfg     *config.ExpiryConfig
	logger  *slog.Logger
}

func NewListener(client *redis.Client, cascade Cascade, cfg *config.ExpiryConfig, logger *slog.Logger) *Listener {
	return &Listener{
		client:  client,
		cascade: cascade,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run subscribes to expiry events until ctx is cancelled, resubscribing with
// exponential backoff whenever the connection drops.
func (l *Listener) Run(ctx context.Context) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = l.cfg.MinBackoff
	b.MaxInterval = l.cfg.MaxBackoff

	for {
		err := l.listen(ctx, b)
		if ctx.Err() != nil {
			l.logger.Info("expiry listener stopped")
			return
		}

		wait := b.NextBackOff()
		l.logger.Warn("expiry subscription lost",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", wait))

		select {
		case <-ctx.Done():
			l.logger.Info("expiry listener stopped")
			return
		case <-time.After(wait):
		}
	}
}

func (l *Listener) listen(ctx context.Context, b *backoff.ExponentialBackOff) error {
	// Managed Redis often forbids CONFIG; notifications may already be on.
	if err := l.client.ConfigSet(ctx, "notify-keyspace-events", "Ex").Err(); err != nil {
		l.logger.Warn("failed to enable keyspace notifications", slog.String("error", err.Error()))
	}

	channel := Channel(l.client.Options().DB)
	pubsub := l.client.PSubscribe(ctx, channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	b.Reset()
	l.logger.Info("expiry listener subscribed", slog.String("channel", channel))

	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			return err
		}
		l.handle(ctx, msg.Payload)
	}
}

func (l *Listener) handle(ctx context.Context, key string) {
	code, ok := CodeFromKey(key)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cascadeTimeout)
	defer cancel()

	if err := l.cascade.Expire(ctx, code); err != nil {
		l.logger.Error("failed to expire link",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
		return
	}
	l.logger.Info("link expired", slog.String("short_code", code))
}
