package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Ledger statuses for a handed-off payment.
const (
	PaymentAttemptPending   = "pending"
	PaymentAttemptConfirmed = "confirmed"
	PaymentAttemptFailed    = "failed"
	PaymentAttemptExpired   = "expired"
)

type PaymentAttemptRM struct {
	Reference     string     `json:"reference"`
	AttemptKey    uuid.UUID  `json:"attempt_key"`
	ReservationID string     `json:"reservation_id,omitempty"`
	GuestEmail    string     `json:"guest_email"`
	RoomID        string     `json:"room_id"`
	AmountMinor   int64      `json:"amount_minor"`
	Currency      string     `json:"currency"`
	Source        string     `json:"source"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func IsPaymentAttemptStatus(s string) bool {
	switch s {
	case PaymentAttemptPending, PaymentAttemptConfirmed, PaymentAttemptFailed, PaymentAttemptExpired:
		return true
	}
	return false
}
