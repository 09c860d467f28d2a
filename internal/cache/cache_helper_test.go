package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*CacheManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheManager(client), mr
}

func TestCacheHelper_SetGet(t *testing.T) {
	cm, mr := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, cm.Stats.Set(ctx, "total_users", 3, time.Minute))
	assert.True(t, mr.Exists("stats:total_users"))

	var got int64
	require.NoError(t, cm.Stats.Get(ctx, "total_users", &got))
	assert.Equal(t, int64(3), got)

	err := cm.Stats.Get(ctx, "missing", &got)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	cm, mr := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, cm.Stats.Set(ctx, "total_users", 1, time.Minute))
	require.NoError(t, cm.Stats.Set(ctx, "total_courses", 2, time.Minute))
	require.NoError(t, mr.Set("other:key", "x"))

	InvalidateStats(ctx, cm)

	assert.False(t, mr.Exists("stats:total_users"))
	assert.False(t, mr.Exists("stats:total_courses"))
	assert.True(t, mr.Exists("other:key"))
}

func TestCacheOrExecute(t *testing.T) {
	cm, _ := newTestManager(t)
	ctx := context.Background()

	calls := 0
	fetch := func() (int64, error) {
		calls++
		return 10, nil
	}

	for i := 0; i < 3; i++ {
		v, err := CacheOrExecute(ctx, cm.Stats, "total_courses", time.Minute, fetch)
		require.NoError(t, err)
		assert.Equal(t, int64(10), v)
	}
	assert.Equal(t, 1, calls)

	_, err := CacheOrExecute(ctx, cm.Stats, "failing", time.Minute, func() (int64, error) {
		return 0, errors.New("db down")
	})
	assert.Error(t, err)
}

func TestCacheManager_NilClient(t *testing.T) {
	cm := NewCacheManager(nil)
	ctx := context.Background()

	assert.False(t, cm.Stats.Available())
	assert.NoError(t, cm.Stats.Set(ctx, "k", 1, time.Minute))
	assert.ErrorIs(t, cm.Stats.Get(ctx, "k", new(int)), ErrCacheNotAvailable)
	assert.ErrorIs(t, cm.HealthCheck(ctx), ErrCacheNotAvailable)

	calls := 0
	for i := 0; i < 2; i++ {
		_, err := CacheOrExecute(ctx, cm.Stats, "k", time.Minute, func() (int, error) {
			calls++
			return 1, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
	assert.NoError(t, cm.Close())
}
