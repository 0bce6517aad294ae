package response

import (
	"log/slog"

	"hotel-booking-gateway/internal/domain/payment"
	"hotel-booking-gateway/internal/usecase/commands"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AmountsResponse struct {
	Base      float64 `json:"base_total"`
	Surcharge float64 `json:"transaction_fee"`
	Total     float64 `json:"total_amount"`
	Currency  string  `json:"currency"`
}

type HandoffResponse struct {
	Provider  string                `json:"provider"`
	ScriptURL string                `json:"script_url"`
	Checkout  payment.WidgetPayload `json:"checkout"`
}

type SubmitBookingResponse struct {
	AttemptKey     string           `json:"attempt_key"`
	Reference      string           `json:"transaction_ref"`
	ReservationID  string           `json:"reservation_id,omitempty"`
	State          string           `json:"state"`
	Amounts        AmountsResponse  `json:"amounts"`
	AmountAdjusted bool             `json:"amount_adjusted"`
	Replayed       bool             `json:"replayed"`
	Payment        *HandoffResponse `json:"payment,omitempty"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitBookingResponse {
	res := &SubmitBookingResponse{
		AttemptKey:    r.AttemptKey.String(),
		Reference:     r.Reference.String(),
		ReservationID: r.ReservationID,
		State:         r.State,
		Amounts: AmountsResponse{
			Base:      r.Base.Major(),
			Surcharge: r.Surcharge.Major(),
			Total:     r.Total.Major(),
			Currency:  r.Currency,
		},
		AmountAdjusted: r.AmountAdjusted,
		Replayed:       r.IsReplayed,
	}
	if r.Handoff != nil {
		res.Payment = &HandoffResponse{
			Provider:  r.Handoff.Provider,
			ScriptURL: r.Handoff.ScriptURL,
			Checkout:  r.Handoff.Payload,
		}
	}
	return res
}

type AttemptResponse struct {
	Key           uuid.UUID `json:"key"`
	Reference     string    `json:"transaction_ref,omitempty"`
	State         string    `json:"state"`
	ReservationID string    `json:"reservation_id,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	Total         float64   `json:"total_amount,omitempty"`
	LastError     string    `json:"last_error,omitempty"`
	Started       int64     `json:"created_at"`
	Updated       int64     `json:"updated_at"`
}

func FromAttemptRM(rm *readmodel.AttemptRM) *AttemptResponse {
	res := &AttemptResponse{}
	if err := copier.Copy(res, rm); err != nil {
		slog.Warn("failed to copy attempt", "error", err)
	}
	res.Total = float64(rm.TotalMinor) / 100
	res.Started = rm.CreatedAt.Unix()
	res.Updated = rm.UpdatedAt.Unix()
	return res
}
