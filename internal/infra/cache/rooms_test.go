//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/infra/cache"
	"hotel-booking-gateway/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, ttl time.Duration) (*cache.RedisRoomCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewRedisRoomCache(rdb, config.RedisConfig{RoomCacheTTL: ttl}), mr
}

func TestRedisRoomCache(t *testing.T) {
	ctx := context.Background()
	in := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	two := 2
	rooms := []booking.RoomOption{
		{ID: "1", Name: "Deluxe", NightlyRate: booking.MoneyFromMajor(30500), Remaining: &two},
		{ID: "2", Name: "Standard", NightlyRate: booking.MoneyFromMajor(18000.5)},
	}

	t.Run("round trip per stay window", func(t *testing.T) {
		c, mr := newCache(t, 30*time.Second)

		require.NoError(t, c.Set(ctx, in, out, rooms))
		assert.True(t, mr.Exists("booking:rooms:2025-03-01:2025-03-04"))

		got, hit, err := c.Get(ctx, in, out)
		require.NoError(t, err)
		require.True(t, hit)
		require.Len(t, got, 2)
		assert.Equal(t, int64(3050000), got[0].NightlyRate.Minor())
		require.NotNil(t, got[0].Remaining)
		assert.Equal(t, 2, *got[0].Remaining)
		assert.Nil(t, got[1].Remaining)

		_, hit, err = c.Get(ctx, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("entries expire", func(t *testing.T) {
		c, mr := newCache(t, 30*time.Second)
		require.NoError(t, c.Set(ctx, time.Time{}, time.Time{}, rooms))

		mr.FastForward(31 * time.Second)

		_, hit, err := c.Get(ctx, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("zero ttl disables writes", func(t *testing.T) {
		c, mr := newCache(t, 0)
		require.NoError(t, c.Set(ctx, in, out, rooms))
		assert.Empty(t, mr.Keys())
	})

	t.Run("corrupt entry is a cache failure", func(t *testing.T) {
		c, mr := newCache(t, time.Minute)
		require.NoError(t, mr.Set("booking:rooms:any", "not json"))

		_, hit, err := c.Get(ctx, time.Time{}, time.Time{})
		assert.False(t, hit)
		assert.True(t, infra.IsKind(err, infra.KindCacheFailure))
	})
}
