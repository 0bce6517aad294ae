//go:build unit

package request_test

import (
	"testing"

	"hotel-booking-gateway/internal/domain/booking"
	reqdto "hotel-booking-gateway/internal/handler/dto/request"
	"hotel-booking-gateway/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitBookingRequestValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*reqdto.SubmitBookingRequest)
		wantField string
		wantMsg   string
	}{
		{
			name:      "empty name is reported before a malformed check-in",
			mutate:    func(r *reqdto.SubmitBookingRequest) { r.GuestName = ""; r.CheckIn = "01/03/2025" },
			wantField: booking.FieldGuestName,
		},
		{
			name:      "bad email is reported before a malformed check-out",
			mutate:    func(r *reqdto.SubmitBookingRequest) { r.GuestEmail = "jane"; r.CheckOut = "2025-3-4" },
			wantField: booking.FieldGuestEmail,
		},
		{
			name:      "missing phone is reported before malformed dates",
			mutate:    func(r *reqdto.SubmitBookingRequest) { r.GuestPhone = " "; r.CheckIn = "tomorrow" },
			wantField: booking.FieldGuestPhone,
		},
		{
			name:      "malformed check-in",
			mutate:    func(r *reqdto.SubmitBookingRequest) { r.CheckIn = "01/03/2025" },
			wantField: booking.FieldDates,
			wantMsg:   "Please enter dates as YYYY-MM-DD.",
		},
		{
			name:      "malformed date is reported before a missing room",
			mutate:    func(r *reqdto.SubmitBookingRequest) { r.CheckOut = "2025-02-30"; r.RoomID = "" },
			wantField: booking.FieldDates,
			wantMsg:   "Please enter dates as YYYY-MM-DD.",
		},
		{
			name:      "empty dates are missing, not malformed",
			mutate:    func(r *reqdto.SubmitBookingRequest) { r.CheckIn = ""; r.CheckOut = "" },
			wantField: booking.FieldDates,
			wantMsg:   "Please select both check-in and check-out dates.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := builder.NewBookingBuilder().BuildRequestDTO()
			tc.mutate(&req)

			vErr := req.ToDraft().Validate()

			require.NotNil(t, vErr)
			assert.Equal(t, tc.wantField, vErr.Field)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, vErr.Message)
			}
		})
	}
}

func TestSubmitBookingRequestToDraft(t *testing.T) {
	t.Run("well-formed request matches the built draft", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		d := b.BuildRequestDTO().ToDraft()

		assert.Equal(t, b.BuildDraft(), d)
		assert.False(t, d.MalformedDates)
		assert.Nil(t, d.Validate())
	})

	t.Run("trims fields and keeps a positive quote", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildRequestDTO()
		req.GuestName = "  Jane Doe "
		quoted := 93330.0
		req.QuotedTotal = &quoted

		d := req.ToDraft()

		assert.Equal(t, "Jane Doe", d.GuestName)
		require.NotNil(t, d.QuotedTotal)
		assert.Equal(t, booking.MoneyFromMajor(93330), *d.QuotedTotal)
	})

	t.Run("non-positive quote is dropped", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildRequestDTO()
		zero := 0.0
		req.QuotedTotal = &zero

		assert.Nil(t, req.ToDraft().QuotedTotal)
	})
}
