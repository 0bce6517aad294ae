//go:build unit

package attempt_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/infra/attempt"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type store interface {
	Acquire(ctx context.Context, key uuid.UUID) (func(), error)
	Get(ctx context.Context, key uuid.UUID) (*readmodel.AttemptRM, error)
	Save(ctx context.Context, rm *readmodel.AttemptRM) error
}

type storeFixture struct {
	store   store
	advance func(d time.Duration)
}

var epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newRedisFixture(t *testing.T) storeFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.RedisConfig{AttemptTTL: time.Hour}
	return storeFixture{
		store:   attempt.NewRedisStore(rdb, cfg),
		advance: mr.FastForward,
	}
}

func newMemoryFixture(t *testing.T) storeFixture {
	t.Helper()
	clk := clock.NewMockClock(epoch)
	cfg := config.RedisConfig{AttemptTTL: time.Hour}
	return storeFixture{
		store:   attempt.NewMemoryStore(cfg, clk),
		advance: clk.Add,
	}
}

func sampleAttempt() *readmodel.AttemptRM {
	return &readmodel.AttemptRM{
		Key:        uuid.New(),
		DraftHash:  "abc123",
		Reference:  "HTL-m7x1-1a0b1c2d3",
		State:      readmodel.AttemptAwaitingPayment,
		Created:    true,
		TotalMinor: 9333000,
		Currency:   "NGN",
		CreatedAt:  epoch,
		UpdatedAt:  epoch,
	}
}

func TestStores(t *testing.T) {
	fixtures := map[string]func(t *testing.T) storeFixture{
		"redis":  newRedisFixture,
		"memory": newMemoryFixture,
	}

	for name, newFixture := range fixtures {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("save then get round-trips the attempt", func(t *testing.T) {
				f := newFixture(t)
				want := sampleAttempt()

				require.NoError(t, f.store.Save(ctx, want))
				got, err := f.store.Get(ctx, want.Key)

				require.NoError(t, err)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("attempt mismatch (-want +got):\n%s", diff)
				}
			})

			t.Run("unknown key is not found", func(t *testing.T) {
				f := newFixture(t)

				_, err := f.store.Get(ctx, uuid.New())

				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindNotFound))
			})

			t.Run("attempt expires after its TTL", func(t *testing.T) {
				f := newFixture(t)
				rm := sampleAttempt()
				require.NoError(t, f.store.Save(ctx, rm))

				f.advance(2 * time.Hour)
				_, err := f.store.Get(ctx, rm.Key)

				assert.True(t, infra.IsKind(err, infra.KindNotFound))
			})

			t.Run("second acquire is locked until release", func(t *testing.T) {
				f := newFixture(t)
				key := uuid.New()

				release, err := f.store.Acquire(ctx, key)
				require.NoError(t, err)

				_, err = f.store.Acquire(ctx, key)
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindLocked))

				release()
				releaseAgain, err := f.store.Acquire(ctx, key)
				require.NoError(t, err)
				releaseAgain()
			})

			t.Run("locks are per key", func(t *testing.T) {
				f := newFixture(t)

				r1, err := f.store.Acquire(ctx, uuid.New())
				require.NoError(t, err)
				defer r1()
				r2, err := f.store.Acquire(ctx, uuid.New())
				require.NoError(t, err)
				defer r2()
			})
		})
	}
}
