package hotelapi

import (
	"context"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/infra"
)

// CreatePending creates the reservation in pending status and returns the
// server's authoritative amounts.
func (c *Client) CreatePending(ctx context.Context, p booking.PendingReservation) (*booking.CreatedReservation, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newCreateBookingRequest(p)).
		Post(pathCreateBooking)
	if err != nil {
		return nil, infra.WrapRepoErr("create reservation request failed", err, infra.KindUpstreamFailure)
	}
	if resp.IsError() {
		return nil, statusErr("create reservation", resp)
	}

	var out createBookingResponse
	if err := decode(resp, &out); err != nil {
		return nil, infra.WrapRepoErr("failed to decode created reservation", err, infra.KindUpstreamFailure)
	}

	record := out.Booking.toDomain()
	ref := record.Reference
	if ref.IsZero() {
		ref = p.Reference
	}
	status := record.Status
	if status == "" {
		status = booking.StatusPending
	}
	total := out.TotalAmount
	if !total.set {
		total = firstSet(out.Booking.TotalAmount, out.Booking.Amount)
	}

	return &booking.CreatedReservation{
		ID:        record.ID,
		Reference: ref,
		Status:    status,
		Base:      out.BaseTotal.money(),
		Surcharge: out.TransactionFee.money(),
		Total:     total.money(),
	}, nil
}

func (c *Client) GetByReference(ctx context.Context, ref booking.Reference) (*booking.ReservationRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("ref", ref.String()).
		Get(pathBookingByRef)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation lookup failed", err, infra.KindUpstreamFailure)
	}
	if resp.IsError() {
		return nil, statusErr("reservation lookup", resp)
	}

	var out bookingLookupResponse
	if err := decode(resp, &out); err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindUpstreamFailure)
	}

	record, ok := out.record()
	if !ok {
		return nil, infra.WrapRepoErr("reservation payload empty", nil, infra.KindNotFound)
	}
	return &record, nil
}
