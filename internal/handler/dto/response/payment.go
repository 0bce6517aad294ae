package response

import (
	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/usecase/commands"
)

type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Failed pages always offer these two ways out.
var failureLinks = []NavLink{
	{Label: "Back to booking", Href: "/book"},
	{Label: "Contact support", Href: "/contact"},
}

type ReceiptResponse struct {
	Reference     string  `json:"transaction_ref"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	GuestName     string  `json:"guest_name,omitempty"`
	GuestEmail    string  `json:"guest_email,omitempty"`
	RoomName      string  `json:"room_name,omitempty"`
	CheckIn       string  `json:"check_in,omitempty"`
	CheckOut      string  `json:"check_out,omitempty"`
	Guests        int     `json:"guests,omitempty"`
	Minimal       bool    `json:"minimal"`
}

type VerificationResponse struct {
	State     string           `json:"state"`
	Reason    string           `json:"reason,omitempty"`
	Message   string           `json:"message"`
	Reference string           `json:"transaction_ref,omitempty"`
	Receipt   *ReceiptResponse `json:"receipt,omitempty"`
	Links     []NavLink        `json:"links,omitempty"`
}

func FromVerificationOutcome(o *commands.VerificationOutcome) *VerificationResponse {
	res := &VerificationResponse{
		State:     o.State,
		Reason:    o.Reason,
		Message:   o.Message,
		Reference: o.Reference.String(),
	}
	if !o.Verified() {
		res.Links = failureLinks
		return res
	}
	if o.Receipt != nil {
		res.Receipt = fromReceipt(*o.Receipt)
	}
	return res
}

func fromReceipt(r booking.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		Reference:     r.Reference.String(),
		Status:        r.Status.String(),
		PaymentStatus: r.PaymentStatus.String(),
		Amount:        r.Amount.Major(),
		Currency:      r.Currency,
		GuestName:     r.GuestName,
		GuestEmail:    r.GuestEmail,
		RoomName:      r.RoomName,
		CheckIn:       booking.FormatDate(r.CheckIn),
		CheckOut:      booking.FormatDate(r.CheckOut),
		Guests:        r.Guests,
		Minimal:       r.Minimal,
	}
}
