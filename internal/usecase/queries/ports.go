package queries

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports.go -package=queriesmock

import (
	"context"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RoomCatalog interface {
	ListRooms(ctx context.Context, checkIn, checkOut time.Time) ([]booking.RoomOption, error)
}

// RoomCache holds catalog snapshots per stay window. A miss is (nil, false, nil).
type RoomCache interface {
	Get(ctx context.Context, checkIn, checkOut time.Time) ([]booking.RoomOption, bool, error)
	Set(ctx context.Context, checkIn, checkOut time.Time, rooms []booking.RoomOption) error
}

type AttemptReader interface {
	Get(ctx context.Context, key uuid.UUID) (*readmodel.AttemptRM, error)
}

type PaymentAttemptReadStore interface {
	ListFirstPage(ctx context.Context, status string, limit int32) ([]readmodel.PaymentAttemptRM, error)
	ListKeyset(ctx context.Context, status string, lastCreatedAt time.Time, lastReference string, limit int32) ([]readmodel.PaymentAttemptRM, error)
	FindByReference(ctx context.Context, reference string) (*readmodel.PaymentAttemptRM, error)
}
