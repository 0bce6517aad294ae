package attempt

import (
	"context"
	"sync"
	"time"

	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type memoryEntry struct {
	rm        readmodel.AttemptRM
	expiresAt time.Time
}

// MemoryStore is the single-process fallback used when Redis is not
// configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryEntry
	locks   map[uuid.UUID]struct{}
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(cfg config.RedisConfig, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]memoryEntry),
		locks:   make(map[uuid.UUID]struct{}),
		ttl:     cfg.AttemptTTL,
		clock:   clk,
	}
}

func (s *MemoryStore) Acquire(_ context.Context, key uuid.UUID) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, held := s.locks[key]; held {
		return nil, infra.WrapRepoErr("attempt already in progress", nil, infra.KindLocked)
	}
	s.locks[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.locks, key)
			s.mu.Unlock()
		})
	}, nil
}

func (s *MemoryStore) Get(_ context.Context, key uuid.UUID) (*readmodel.AttemptRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || (!e.expiresAt.IsZero() && !s.clock.Now().Before(e.expiresAt)) {
		delete(s.entries, key)
		return nil, infra.WrapRepoErr("attempt not found", nil, infra.KindNotFound)
	}
	rm := e.rm
	return &rm, nil
}

func (s *MemoryStore) Save(_ context.Context, rm *readmodel.AttemptRM) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.clock.Now().Add(s.ttl)
	}
	s.entries[rm.Key] = memoryEntry{rm: *rm, expiresAt: expiresAt}
	return nil
}
