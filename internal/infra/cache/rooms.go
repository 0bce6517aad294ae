// Package cache keeps short-lived copies of upstream catalog reads.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const roomKeyPrefix = "booking:rooms:"

type cachedRoom struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RateMinor int64  `json:"rate_minor"`
	Remaining *int   `json:"remaining,omitempty"`
}

type RedisRoomCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRoomCache(rdb *redis.Client, cfg config.RedisConfig) *RedisRoomCache {
	return &RedisRoomCache{rdb: rdb, ttl: cfg.RoomCacheTTL}
}

// roomsKey uses "any" for an open stay window.
func roomsKey(checkIn, checkOut time.Time) string {
	if checkIn.IsZero() || checkOut.IsZero() {
		return roomKeyPrefix + "any"
	}
	return roomKeyPrefix + booking.FormatDate(checkIn) + ":" + booking.FormatDate(checkOut)
}

func (c *RedisRoomCache) Get(ctx context.Context, checkIn, checkOut time.Time) ([]booking.RoomOption, bool, error) {
	raw, err := c.rdb.Get(ctx, roomsKey(checkIn, checkOut)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to read room cache", err, infra.KindCacheFailure)
	}

	var cached []cachedRoom
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, infra.WrapRepoErr("failed to decode room cache", err, infra.KindCacheFailure)
	}

	rooms := make([]booking.RoomOption, 0, len(cached))
	for _, r := range cached {
		rooms = append(rooms, booking.RoomOption{
			ID:          r.ID,
			Name:        r.Name,
			NightlyRate: booking.NewMoney(r.RateMinor),
			Remaining:   r.Remaining,
		})
	}
	return rooms, true, nil
}

func (c *RedisRoomCache) Set(ctx context.Context, checkIn, checkOut time.Time, rooms []booking.RoomOption) error {
	if c.ttl <= 0 {
		return nil
	}

	cached := make([]cachedRoom, 0, len(rooms))
	for _, r := range rooms {
		cached = append(cached, cachedRoom{
			ID:        r.ID,
			Name:      r.Name,
			RateMinor: r.NightlyRate.Minor(),
			Remaining: r.Remaining,
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return infra.WrapRepoErr("failed to encode room cache", err, infra.KindCacheFailure)
	}
	if err := c.rdb.Set(ctx, roomsKey(checkIn, checkOut), raw, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write room cache", err, infra.KindCacheFailure)
	}
	return nil
}

// NopRoomCache always misses.
type NopRoomCache struct{}

func (NopRoomCache) Get(context.Context, time.Time, time.Time) ([]booking.RoomOption, bool, error) {
	return nil, false, nil
}

func (NopRoomCache) Set(context.Context, time.Time, time.Time, []booking.RoomOption) error {
	return nil
}
