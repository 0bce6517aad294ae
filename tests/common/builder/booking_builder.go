//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/domain/payment"
	reqdto "hotel-booking-gateway/internal/handler/dto/request"
	"hotel-booking-gateway/internal/usecase/commands"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	RoomID      string
	CheckIn     string
	CheckOut    string
	Guests      int
	NightlyRate float64
	Reference   booking.Reference
	AttemptKey  uuid.UUID
	Currency    string
}

// NewBookingBuilder starts from the three-night deluxe stay at 30500 a night.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		GuestName:   "Jane Doe",
		GuestEmail:  "jane@x.com",
		GuestPhone:  "08000000000",
		RoomID:      "deluxe",
		CheckIn:     "2025-03-01",
		CheckOut:    "2025-03-04",
		Guests:      2,
		NightlyRate: 30500,
		Reference:   "HTL-m7x1k2-1a0b1c2d3",
		AttemptKey:  uuid.MustParse("0b7e4f2c-3c59-4a8e-a1d2-5f6a7b8c9d0e"),
		Currency:    "NGN",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
	}
}

func (b *BookingBuilder) BuildDraft() booking.Draft {
	checkIn, _ := booking.ParseDate(b.CheckIn)
	checkOut, _ := booking.ParseDate(b.CheckOut)
	return booking.Draft{
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		RoomID:     b.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     b.Guests,
	}
}

func (b *BookingBuilder) quote() booking.Quote {
	return booking.CalculateQuote(booking.MoneyFromMajor(b.NightlyRate), booking.NightsBetween(b.BuildDraft().CheckIn, b.BuildDraft().CheckOut))
}

func (b *BookingBuilder) BuildSubmitResult() *commands.SubmitResult {
	q := b.quote()
	return &commands.SubmitResult{
		AttemptKey:    b.AttemptKey,
		Reference:     b.Reference,
		ReservationID: "77",
		State:         readmodel.AttemptDone,
		Base:          q.Base,
		Surcharge:     q.Surcharge,
		Total:         q.Total,
		Currency:      b.Currency,
		Handoff: &payment.Handoff{
			Provider:  "flutterwave",
			ScriptURL: "https://checkout.flutterwave.com/v3.js",
			Payload: payment.WidgetPayload{
				PublicKey: "FLWPUBK_TEST-0000000000000000-X",
				TxRef:     b.Reference.String(),
				Amount:    q.Total.Major(),
				Currency:  b.Currency,
				Customer: payment.Customer{
					Email:       b.GuestEmail,
					PhoneNumber: b.GuestPhone,
					Name:        b.GuestName,
				},
				RedirectURL: "https://localhost:8889/booking/success",
			},
		},
	}
}

func (b *BookingBuilder) BuildAttemptRM(state string) *readmodel.AttemptRM {
	q := b.quote()
	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	return &readmodel.AttemptRM{
		Key:            b.AttemptKey,
		Reference:      b.Reference.String(),
		State:          state,
		Created:        state == readmodel.AttemptAwaitingPayment || state == readmodel.AttemptDone,
		ReservationID:  "77",
		BaseMinor:      q.Base.Minor(),
		SurchargeMinor: q.Surcharge.Minor(),
		TotalMinor:     q.Total.Minor(),
		Currency:       b.Currency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
