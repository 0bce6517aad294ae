package booking

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type Source string

const (
	SourceWeb       Source = "web"
	SourceFrontDesk Source = "front_desk"
)

// RoomOption is a read-only snapshot of a bookable room category.
type RoomOption struct {
	ID          string
	Name        string
	NightlyRate Money
	Remaining   *int
}

// PendingReservation is the create request sent to the reservation API.
type PendingReservation struct {
	Reference  Reference
	GuestName  string
	GuestEmail string
	GuestPhone string
	RoomID     string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Source     Source
}

func NewPendingReservation(ref Reference, d Draft, source Source) PendingReservation {
	return PendingReservation{
		Reference:  ref,
		GuestName:  strings.TrimSpace(d.GuestName),
		GuestEmail: strings.TrimSpace(d.GuestEmail),
		GuestPhone: strings.TrimSpace(d.GuestPhone),
		RoomID:     strings.TrimSpace(d.RoomID),
		CheckIn:    d.CheckIn,
		CheckOut:   d.CheckOut,
		Guests:     d.NormalizedGuests(),
		Source:     source,
	}
}

// CreatedReservation carries the server's authoritative amounts.
type CreatedReservation struct {
	ID        string
	Reference Reference
	Status    Status
	Base      Money
	Surcharge Money
	Total     Money
}

// ChargeAmount picks the amount to hand to the payment provider: the server
// total, else the server's base plus fee. Zero means the server sent neither.
func (c CreatedReservation) ChargeAmount() Money {
	if c.Total.IsPositive() {
		return c.Total
	}
	if sum := c.Base.Add(c.Surcharge); sum.IsPositive() {
		return sum
	}
	return Money{}
}

type ReservationRecord struct {
	ID            string
	Reference     Reference
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	RoomID        string
	RoomName      string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	Status        Status
	PaymentStatus PaymentStatus
	Total         Money
}

// Receipt is what the guest sees after a verified payment. Minimal receipts
// are built from the verification response alone when the reservation lookup
// fails.
type Receipt struct {
	Reference     Reference
	Status        Status
	PaymentStatus PaymentStatus
	Amount        Money
	Currency      string
	GuestName     string
	GuestEmail    string
	RoomName      string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	Minimal       bool
}

func NewMinimalReceipt(ref Reference, amount Money, currency string) Receipt {
	return Receipt{
		Reference:     ref,
		Status:        StatusConfirmed,
		PaymentStatus: PaymentPaid,
		Amount:        amount,
		Currency:      currency,
		Minimal:       true,
	}
}

func NewReceipt(ref Reference, rec ReservationRecord, amount Money, currency string) Receipt {
	if !rec.Reference.IsZero() {
		ref = rec.Reference
	}
	if !amount.IsPositive() {
		amount = rec.Total
	}
	status := rec.Status
	if status == "" || status == StatusPending {
		status = StatusConfirmed
	}
	return Receipt{
		Reference:     ref,
		Status:        status,
		PaymentStatus: PaymentPaid,
		Amount:        amount,
		Currency:      currency,
		GuestName:     rec.GuestName,
		GuestEmail:    rec.GuestEmail,
		RoomName:      rec.RoomName,
		CheckIn:       rec.CheckIn,
		CheckOut:      rec.CheckOut,
		Guests:        rec.Guests,
	}
}
