//go:build integration

package expiry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkly/internal/config"
	"linkly/internal/expiry"
	"linkly/internal/testutil"
)

func TestListener_ExpiresScheduledLinks(t *testing.T) {
	client, _ := testutil.Redis(t)
	cascade := &fakeCascade{}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	l := expiry.NewListener(client, cascade, &config.ExpiryConfig{
		MinBackoff: 50 * time.Millisecond,
		MaxBackoff: time.Second,
	}, discard())

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	// Give the subscription a moment before the marker expires.
	require.Eventually(t, func() bool {
		n, err := client.PubSubNumPat(ctx).Result()
		return err == nil && n > 0
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, expiry.NewScheduler(client).Schedule(ctx, "abc12", time.Second))
	require.NoError(t, client.Set(ctx, "unrelated", "1", time.Second).Err())

	assert.Eventually(t, func() bool {
		return len(cascade.expired()) == 1
	}, 10*time.Second, 50*time.Millisecond)
	assert.Equal(t, []string{"abc12"}, cascade.expired())

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop after cancellation")
	}
}
