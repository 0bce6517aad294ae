package request

import (
	"strings"

	"hotel-booking-gateway/internal/domain/booking"
)

// SubmitBookingRequest carries the draft as the guest typed it. Field checks
// are left to the draft validator so its precedence order holds.
type SubmitBookingRequest struct {
	GuestName   string   `json:"guest_name"`
	GuestEmail  string   `json:"guest_email"`
	GuestPhone  string   `json:"guest_phone"`
	RoomID      string   `json:"room_id"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	Guests      int      `json:"guests"`
	QuotedTotal *float64 `json:"quoted_total,omitempty"`
}

// ToDraft never fails. An unparseable date is flagged on the draft and
// reported by Validate in its turn.
func (r SubmitBookingRequest) ToDraft() booking.Draft {
	checkIn, errIn := booking.ParseDate(r.CheckIn)
	checkOut, errOut := booking.ParseDate(r.CheckOut)

	d := booking.Draft{
		GuestName:      strings.TrimSpace(r.GuestName),
		GuestEmail:     strings.TrimSpace(r.GuestEmail),
		GuestPhone:     strings.TrimSpace(r.GuestPhone),
		RoomID:         strings.TrimSpace(r.RoomID),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Guests:         r.Guests,
		MalformedDates: errIn != nil || errOut != nil,
	}
	if r.QuotedTotal != nil && *r.QuotedTotal > 0 {
		q := booking.MoneyFromMajor(*r.QuotedTotal)
		d.QuotedTotal = &q
	}
	return d
}
