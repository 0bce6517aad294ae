package hotelapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
)

// flexNumber accepts 30500, 30500.5, "30500" and null.
type flexNumber struct {
	value float64
	set   bool
}

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		n.value, n.set = f, true
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	n.value, n.set = f, true
	return nil
}

func (n flexNumber) money() booking.Money {
	if !n.set {
		return booking.Money{}
	}
	return booking.MoneyFromMajor(n.value)
}

// flexString accepts "12", 12 and null.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

func firstNonEmpty(values ...flexString) string {
	for _, v := range values {
		if s := strings.TrimSpace(string(v)); s != "" {
			return s
		}
	}
	return ""
}

func firstSet(values ...flexNumber) flexNumber {
	for _, v := range values {
		if v.set {
			return v
		}
	}
	return flexNumber{}
}

var dateLayouts = []string{
	booking.DateLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
}

func parseFlexibleDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

// roomWire covers every room shape the inventory API has returned.
type roomWire struct {
	ID             flexString `json:"id"`
	Price          flexNumber `json:"price"`
	PricePerNight  flexNumber `json:"price_per_night"`
	Amount         flexNumber `json:"amount"`
	Name           flexString `json:"name"`
	Type           flexString `json:"type"`
	RoomType       flexString `json:"room_type"`
	AvailableRooms flexNumber `json:"available_rooms"`
	Remaining      flexNumber `json:"remaining"`
}

func (w roomWire) toDomain() booking.RoomOption {
	var remaining *int
	if n := firstSet(w.AvailableRooms, w.Remaining); n.set {
		v := int(n.value)
		remaining = &v
	}
	return booking.RoomOption{
		ID:          firstNonEmpty(w.ID),
		Name:        firstNonEmpty(w.Name, w.Type, w.RoomType),
		NightlyRate: firstSet(w.Price, w.PricePerNight, w.Amount).money(),
		Remaining:   remaining,
	}
}

type roomListResponse struct {
	Success bool       `json:"success"`
	Data    []roomWire `json:"data"`
}

type availabilityResponse struct {
	Success   bool  `json:"success"`
	Available *bool `json:"available"`
}

type createBookingRequest struct {
	GuestName      string `json:"guest_name"`
	GuestEmail     string `json:"guest_email"`
	GuestPhone     string `json:"guest_phone"`
	RoomID         string `json:"room_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Guests         int    `json:"guests"`
	Status         string `json:"status"`
	PaymentStatus  string `json:"payment_status"`
	TransactionRef string `json:"transaction_ref"`
	Source         string `json:"source,omitempty"`
}

func newCreateBookingRequest(p booking.PendingReservation) createBookingRequest {
	return createBookingRequest{
		GuestName:      p.GuestName,
		GuestEmail:     p.GuestEmail,
		GuestPhone:     p.GuestPhone,
		RoomID:         p.RoomID,
		CheckIn:        booking.FormatDate(p.CheckIn),
		CheckOut:       booking.FormatDate(p.CheckOut),
		Guests:         p.Guests,
		Status:         booking.StatusPending.String(),
		PaymentStatus:  booking.PaymentPending.String(),
		TransactionRef: p.Reference.String(),
		Source:         string(p.Source),
	}
}

// bookingWire covers nested and flattened booking payloads.
type bookingWire struct {
	ID             flexString `json:"id"`
	TransactionRef flexString `json:"transaction_ref"`
	TxRef          flexString `json:"tx_ref"`
	GuestName      flexString `json:"guest_name"`
	GuestEmail     flexString `json:"guest_email"`
	GuestPhone     flexString `json:"guest_phone"`
	RoomID         flexString `json:"room_id"`
	RoomName       flexString `json:"room_name"`
	RoomType       flexString `json:"room_type"`
	Room           *roomWire  `json:"room"`
	CheckIn        flexString `json:"check_in"`
	CheckOut       flexString `json:"check_out"`
	Guests         flexNumber `json:"guests"`
	Status         flexString `json:"status"`
	PaymentStatus  flexString `json:"payment_status"`
	TotalAmount    flexNumber `json:"total_amount"`
	Amount         flexNumber `json:"amount"`
}

func (w bookingWire) isEmpty() bool {
	return firstNonEmpty(w.ID, w.TransactionRef, w.TxRef, w.GuestEmail) == ""
}

func (w bookingWire) toDomain() booking.ReservationRecord {
	roomName := firstNonEmpty(w.RoomName, w.RoomType)
	roomID := firstNonEmpty(w.RoomID)
	if w.Room != nil {
		room := w.Room.toDomain()
		if roomName == "" {
			roomName = room.Name
		}
		if roomID == "" {
			roomID = room.ID
		}
	}
	guests := 0
	if w.Guests.set {
		guests = int(w.Guests.value)
	}
	return booking.ReservationRecord{
		ID:            firstNonEmpty(w.ID),
		Reference:     booking.Reference(firstNonEmpty(w.TransactionRef, w.TxRef)),
		GuestName:     firstNonEmpty(w.GuestName),
		GuestEmail:    firstNonEmpty(w.GuestEmail),
		GuestPhone:    firstNonEmpty(w.GuestPhone),
		RoomID:        roomID,
		RoomName:      roomName,
		CheckIn:       parseFlexibleDate(string(w.CheckIn)),
		CheckOut:      parseFlexibleDate(string(w.CheckOut)),
		Guests:        guests,
		Status:        booking.Status(strings.ToLower(firstNonEmpty(w.Status))),
		PaymentStatus: booking.PaymentStatus(strings.ToLower(firstNonEmpty(w.PaymentStatus))),
		Total:         firstSet(w.TotalAmount, w.Amount).money(),
	}
}

type createBookingResponse struct {
	Booking        bookingWire `json:"booking"`
	BaseTotal      flexNumber  `json:"base_total"`
	TransactionFee flexNumber  `json:"transaction_fee"`
	TotalAmount    flexNumber  `json:"total_amount"`
}

// bookingLookupResponse decodes both {"booking": {...}} and a bare booking.
type bookingLookupResponse struct {
	Booking *bookingWire `json:"booking"`
	bookingWire
}

func (r bookingLookupResponse) record() (booking.ReservationRecord, bool) {
	if r.Booking != nil && !r.Booking.isEmpty() {
		return r.Booking.toDomain(), true
	}
	if !r.bookingWire.isEmpty() {
		return r.bookingWire.toDomain(), true
	}
	return booking.ReservationRecord{}, false
}

type verifyRequest struct {
	TxRef         string `json:"tx_ref"`
	TransactionID string `json:"transaction_id"`
}

type verifyResponse struct {
	Status string `json:"status"`
	Data   struct {
		Status        flexString `json:"status"`
		Amount        flexNumber `json:"amount"`
		ChargedAmount flexNumber `json:"charged_amount"`
		Currency      flexString `json:"currency"`
		TxRef         flexString `json:"tx_ref"`
		ID            flexString `json:"id"`
	} `json:"data"`
}

func (r verifyResponse) confirmed() bool {
	if !strings.EqualFold(strings.TrimSpace(r.Status), "success") {
		return false
	}
	switch strings.ToLower(firstNonEmpty(r.Data.Status)) {
	case "", "success", "successful", "completed", "paid":
		return true
	default:
		return false
	}
}
