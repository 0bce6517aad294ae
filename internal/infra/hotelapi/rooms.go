package hotelapi

import (
	"context"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/infra"
)

func (c *Client) ListRooms(ctx context.Context, checkIn, checkOut time.Time) ([]booking.RoomOption, error) {
	req := c.http.R().SetContext(ctx)
	if !checkIn.IsZero() && !checkOut.IsZero() {
		req.SetQueryParams(map[string]string{
			"check_in":  booking.FormatDate(checkIn),
			"check_out": booking.FormatDate(checkOut),
		})
	}

	resp, err := req.Get(pathAvailableRooms)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err, infra.KindUpstreamFailure)
	}
	if resp.IsError() {
		return nil, statusErr("list rooms", resp)
	}

	var out roomListResponse
	if err := decode(resp, &out); err != nil {
		return nil, infra.WrapRepoErr("failed to decode room list", err, infra.KindUpstreamFailure)
	}

	rooms := make([]booking.RoomOption, 0, len(out.Data))
	for _, w := range out.Data {
		room := w.toDomain()
		if room.ID == "" {
			continue
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// CheckAvailability asks whether the room category has capacity for the stay.
func (c *Client) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"room_type_id": roomID,
			"check_in":     booking.FormatDate(checkIn),
			"check_out":    booking.FormatDate(checkOut),
		}).
		Get(pathCheckAvailability)
	if err != nil {
		return false, infra.WrapRepoErr("availability request failed", err, infra.KindUpstreamFailure)
	}
	if resp.IsError() {
		return false, statusErr("check availability", resp)
	}

	var out availabilityResponse
	if err := decode(resp, &out); err != nil {
		return false, infra.WrapRepoErr("failed to decode availability", err, infra.KindUpstreamFailure)
	}
	if out.Available == nil {
		return false, infra.WrapRepoErr("availability response missing 'available'", nil, infra.KindUpstreamFailure)
	}
	return *out.Available, nil
}
