package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterBlocksAboveLimit(t *testing.T) {
	setupRedis(t)
	limiter := NewRateLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestRateLimiterPerFingerprint(t *testing.T) {
	setupRedis(t)
	limiter := NewRateLimiter(1, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.True(t, allowed)

	// 另一个指纹不受影响
	allowed, err = limiter.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestRateLimiterWindowSlides(t *testing.T) {
	setupRedis(t)
	limiter := NewRateLimiter(2, 50*time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.False(t, allowed)

	// 窗口滑过之后额度回来
	time.Sleep(60 * time.Millisecond)
	allowed, err = limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestRateLimiterDefaults(t *testing.T) {
	limiter := NewRateLimiter(0, 0)
	require.Equal(t, DefaultRateLimit, limiter.limit)
	require.Equal(t, DefaultRateWindow, limiter.window)
}
