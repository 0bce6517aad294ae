package booking

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const (
	FieldGuestName  = "guest_name"
	FieldGuestEmail = "guest_email"
	FieldGuestPhone = "guest_phone"
	FieldDates      = "dates"
	FieldCheckOut   = "check_out"
	FieldRoomID     = "room_id"
	FieldNights     = "nights"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Draft is the guest's in-progress booking form. Zero dates mean "not chosen".
type Draft struct {
	GuestName  string
	GuestEmail string
	GuestPhone string
	RoomID     string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int

	// MalformedDates records that a date was sent but could not be parsed.
	// The date itself is left zero.
	MalformedDates bool

	// QuotedTotal is the total the guest was shown, if the page sent it.
	QuotedTotal *Money
}

// Validate checks the draft in a fixed order and reports only the first
// failure, so a draft missing both name and email reports the name.
func (d Draft) Validate() *ValidationError {
	switch {
	case strings.TrimSpace(d.GuestName) == "":
		return &ValidationError{Field: FieldGuestName, Message: "Please enter your full name."}
	case strings.TrimSpace(d.GuestEmail) == "" || !strings.Contains(d.GuestEmail, "@"):
		return &ValidationError{Field: FieldGuestEmail, Message: "Please enter a valid email address."}
	case strings.TrimSpace(d.GuestPhone) == "":
		return &ValidationError{Field: FieldGuestPhone, Message: "Please enter your phone number."}
	case d.MalformedDates:
		return &ValidationError{Field: FieldDates, Message: "Please enter dates as YYYY-MM-DD."}
	case d.CheckIn.IsZero() || d.CheckOut.IsZero():
		return &ValidationError{Field: FieldDates, Message: "Please select both check-in and check-out dates."}
	case !d.CheckIn.Before(d.CheckOut):
		return &ValidationError{Field: FieldCheckOut, Message: "Check-out date must be after check-in date."}
	case strings.TrimSpace(d.RoomID) == "":
		return &ValidationError{Field: FieldRoomID, Message: "Please select a room."}
	case d.Nights() <= 0:
		return &ValidationError{Field: FieldNights, Message: "Your stay must be at least one night."}
	}
	return nil
}

// Nights counts calendar nights between the two dates; zero if either is missing.
func (d Draft) Nights() int {
	if d.CheckIn.IsZero() || d.CheckOut.IsZero() {
		return 0
	}
	return NightsBetween(d.CheckIn, d.CheckOut)
}

func (d Draft) NormalizedGuests() int {
	if d.Guests < 1 {
		return 1
	}
	return d.Guests
}

func NightsBetween(checkIn, checkOut time.Time) int {
	in := civilDate(checkIn)
	out := civilDate(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD calendar date. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
