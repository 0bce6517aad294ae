package booking

import "time"

type EventType string

const (
	EventPending   EventType = "booking.pending"
	EventConfirmed EventType = "booking.confirmed"
	EventExpired   EventType = "booking.expired"
)

// Event is published after the booking flow hands off, verifies or gives up
// on a payment. Consumers key on Reference.
type Event struct {
	Type          EventType `json:"type"`
	Reference     Reference `json:"reference"`
	ReservationID string    `json:"reservation_id,omitempty"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	GuestEmail    string    `json:"guest_email,omitempty"`
	Source        Source    `json:"source,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
