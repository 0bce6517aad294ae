package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/domain/payment"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AvailabilityOracle interface {
	CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

type ReservationAPI interface {
	CreatePending(ctx context.Context, p booking.PendingReservation) (*booking.CreatedReservation, error)
	GetByReference(ctx context.Context, ref booking.Reference) (*booking.ReservationRecord, error)
}

type PaymentVerifier interface {
	Verify(ctx context.Context, ref booking.Reference, transactionID string) (*payment.Verification, error)
}

type PaymentBridge interface {
	Open(ctx context.Context, charge payment.Charge) (*payment.Handoff, error)
}

// AttemptStore persists submission attempts. Acquire fails with a
// KindLocked repository error while another submission holds the key.
type AttemptStore interface {
	Acquire(ctx context.Context, key uuid.UUID) (release func(), err error)
	Get(ctx context.Context, key uuid.UUID) (*readmodel.AttemptRM, error)
	Save(ctx context.Context, rm *readmodel.AttemptRM) error
}

type PaymentLedger interface {
	RecordPending(ctx context.Context, rm readmodel.PaymentAttemptRM) error
	MarkConfirmed(ctx context.Context, reference, transactionID string, amountMinor int64, currency string) error
	MarkFailed(ctx context.Context, reference string) error
	ExpireStalePending(ctx context.Context, cutoff time.Time) ([]readmodel.PaymentAttemptRM, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event booking.Event) error
}
