package hotelapi

import (
	"context"
	"strings"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/domain/payment"
	"hotel-booking-gateway/internal/infra"
)

// Verify asks the hotel API to confirm the provider transaction server-side.
// A non-2xx answer is returned as an error; a 2xx answer that does not
// confirm the payment comes back with Confirmed=false.
func (c *Client) Verify(ctx context.Context, ref booking.Reference, transactionID string) (*payment.Verification, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(verifyRequest{TxRef: ref.String(), TransactionID: transactionID}).
		Post(pathVerifyPayment)
	if err != nil {
		return nil, infra.WrapRepoErr("payment verification request failed", err, infra.KindUpstreamFailure)
	}
	if resp.IsError() {
		return nil, statusErr("verify payment", resp)
	}

	var out verifyResponse
	if err := decode(resp, &out); err != nil {
		return nil, infra.WrapRepoErr("failed to decode verification", err, infra.KindUpstreamFailure)
	}

	echoed := booking.Reference(firstNonEmpty(out.Data.TxRef))
	if echoed.IsZero() {
		echoed = ref
	}
	txID := firstNonEmpty(out.Data.ID)
	if txID == "" {
		txID = transactionID
	}

	return &payment.Verification{
		Confirmed:     out.confirmed(),
		Status:        strings.ToLower(out.Status),
		Reference:     echoed,
		TransactionID: txID,
		Amount:        firstSet(out.Data.Amount, out.Data.ChargedAmount).money(),
		Currency:      strings.ToUpper(firstNonEmpty(out.Data.Currency)),
	}, nil
}
