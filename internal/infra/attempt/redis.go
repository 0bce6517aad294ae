// Package attempt stores submission attempts keyed by the client's
// idempotency key, together with the lock that keeps one attempt from running
// twice at the same time.
package attempt

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "booking:attempt:"
	lockTTL   = 2 * time.Minute
)

// Deletes the lock only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, cfg config.RedisConfig) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: cfg.AttemptTTL}
}

func dataKey(key uuid.UUID) string {
	return keyPrefix + key.String()
}

func lockKey(key uuid.UUID) string {
	return keyPrefix + key.String() + ":lock"
}

func (s *RedisStore) Acquire(ctx context.Context, key uuid.UUID) (func(), error) {
	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, lockKey(key), token, lockTTL).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to acquire attempt lock", err, infra.KindCacheFailure)
	}
	if !ok {
		return nil, infra.WrapRepoErr("attempt already in progress", nil, infra.KindLocked)
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, s.rdb, []string{lockKey(key)}, token).Err(); err != nil {
			slog.Warn("failed to release attempt lock", "key", key, "error", err)
		}
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, key uuid.UUID) (*readmodel.AttemptRM, error) {
	raw, err := s.rdb.Get(ctx, dataKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("attempt not found", nil, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read attempt", err, infra.KindCacheFailure)
	}

	var rm readmodel.AttemptRM
	if err := json.Unmarshal(raw, &rm); err != nil {
		return nil, infra.WrapRepoErr("failed to decode attempt", err, infra.KindCacheFailure)
	}
	return &rm, nil
}

func (s *RedisStore) Save(ctx context.Context, rm *readmodel.AttemptRM) error {
	raw, err := json.Marshal(rm)
	if err != nil {
		return infra.WrapRepoErr("failed to encode attempt", err, infra.KindCacheFailure)
	}
	if err := s.rdb.Set(ctx, dataKey(rm.Key), raw, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save attempt", err, infra.KindCacheFailure)
	}
	return nil
}
