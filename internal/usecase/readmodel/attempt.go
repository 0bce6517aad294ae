package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Submission attempt states, in the order a successful attempt passes them.
const (
	AttemptIdle                 = "idle"
	AttemptValidating           = "validating"
	AttemptCheckingAvailability = "checking_availability"
	AttemptSubmitting           = "submitting"
	AttemptAwaitingPayment      = "awaiting_payment"
	AttemptDone                 = "done"
)

type AttemptRM struct {
	Key            uuid.UUID `json:"key"`
	DraftHash      string    `json:"draft_hash"`
	Reference      string    `json:"reference,omitempty"`
	State          string    `json:"state"`
	Created        bool      `json:"created"`
	ReservationID  string    `json:"reservation_id,omitempty"`
	BaseMinor      int64     `json:"base_minor,omitempty"`
	SurchargeMinor int64     `json:"surcharge_minor,omitempty"`
	TotalMinor     int64     `json:"total_minor,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	LastError      string    `json:"last_error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
