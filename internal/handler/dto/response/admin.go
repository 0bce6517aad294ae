package response

import (
	"log/slog"
	"time"

	"hotel-booking-gateway/internal/usecase/queries"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentAttemptResponse struct {
	Reference     string     `json:"transaction_ref"`
	AttemptKey    uuid.UUID  `json:"attempt_key"`
	ReservationID string     `json:"reservation_id,omitempty"`
	GuestEmail    string     `json:"guest_email"`
	RoomID        string     `json:"room_id"`
	AmountMinor   int64      `json:"amount_minor"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Source        string     `json:"source"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromPaymentAttemptRM(rm *readmodel.PaymentAttemptRM) *PaymentAttemptResponse {
	res := &PaymentAttemptResponse{}
	if err := copier.Copy(res, rm); err != nil {
		slog.Warn("failed to copy payment attempt", "reference", rm.Reference, "error", err)
	}
	res.Amount = float64(rm.AmountMinor) / 100
	return res
}

type PaymentAttemptListResponse struct {
	Items []*PaymentAttemptResponse `json:"items"`
	Next  *queries.Cursor           `json:"next,omitempty"`
}

func FromPaymentAttemptList(rows []readmodel.PaymentAttemptRM, next *queries.Cursor) *PaymentAttemptListResponse {
	items := make([]*PaymentAttemptResponse, len(rows))
	for i := range rows {
		items[i] = FromPaymentAttemptRM(&rows[i])
	}
	return &PaymentAttemptListResponse{Items: items, Next: next}
}

type SweepResponse struct {
	Expired int `json:"expired"`
}
