//go:build unit

package hotelapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/infra/hotelapi"
	"hotel-booking-gateway/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStub(t *testing.T, handler http.HandlerFunc) *hotelapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return hotelapi.NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestListRooms(t *testing.T) {
	t.Run("normalizes every room shape", func(t *testing.T) {
		var gotQuery string
		client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/room-inventory/available", r.URL.Path)
			gotQuery = r.URL.RawQuery
			writeJSON(w, http.StatusOK, `{"success":true,"data":[
				{"id":1,"name":"Deluxe","price":30500,"available_rooms":2},
				{"id":"2","type":"Suite","price_per_night":"45000"},
				{"id":3,"room_type":"Standard","amount":20000.5,"remaining":"0"},
				{"name":"no id"}
			]}`)
		})

		rooms, err := client.ListRooms(context.Background(), mustDate(t, "2025-03-01"), mustDate(t, "2025-03-04"))

		require.NoError(t, err)
		assert.Contains(t, gotQuery, "check_in=2025-03-01")
		assert.Contains(t, gotQuery, "check_out=2025-03-04")
		require.Len(t, rooms, 3)

		assert.Equal(t, "1", rooms[0].ID)
		assert.Equal(t, "Deluxe", rooms[0].Name)
		assert.Equal(t, int64(3050000), rooms[0].NightlyRate.Minor())
		require.NotNil(t, rooms[0].Remaining)
		assert.Equal(t, 2, *rooms[0].Remaining)

		assert.Equal(t, "Suite", rooms[1].Name)
		assert.Equal(t, int64(4500000), rooms[1].NightlyRate.Minor())
		assert.Nil(t, rooms[1].Remaining)

		assert.Equal(t, "Standard", rooms[2].Name)
		assert.Equal(t, int64(2000050), rooms[2].NightlyRate.Minor())
		require.NotNil(t, rooms[2].Remaining)
		assert.Equal(t, 0, *rooms[2].Remaining)
	})

	t.Run("omits dates when not both given", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			writeJSON(w, http.StatusOK, `{"data":[]}`)
		})

		rooms, err := client.ListRooms(context.Background(), time.Time{}, time.Time{})

		require.NoError(t, err)
		assert.Empty(t, rooms)
	})

	t.Run("5xx maps to upstream failure", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadGateway, `{"message":"inventory down"}`)
		})

		_, err := client.ListRooms(context.Background(), time.Time{}, time.Time{})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
		assert.Contains(t, err.Error(), "inventory down")
	})
}

func TestCheckAvailability(t *testing.T) {
	checkIn, checkOut := mustDate(t, "2025-03-01"), mustDate(t, "2025-03-04")

	t.Run("sends the room and stay dates", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/room-inventory/check-availability", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "12", q.Get("room_type_id"))
			assert.Equal(t, "2025-03-01", q.Get("check_in"))
			assert.Equal(t, "2025-03-04", q.Get("check_out"))
			writeJSON(w, http.StatusOK, `{"success":true,"available":true}`)
		})

		ok, err := client.CheckAvailability(context.Background(), "12", checkIn, checkOut)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unavailable is not an error", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"available":false}`)
		})

		ok, err := client.CheckAvailability(context.Background(), "12", checkIn, checkOut)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing flag is an error", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"success":true}`)
		})

		_, err := client.CheckAvailability(context.Background(), "12", checkIn, checkOut)

		require.Error(t, err)
	})

	t.Run("4xx maps to upstream rejected", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnprocessableEntity, `{"error":"bad dates"}`)
		})

		_, err := client.CheckAvailability(context.Background(), "12", checkIn, checkOut)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamRejected))
	})
}

func TestCreatePending(t *testing.T) {
	pending := booking.PendingReservation{
		Reference:  booking.Reference("HTL-abc-1"),
		GuestName:  "Ada Obi",
		GuestEmail: "ada@example.com",
		GuestPhone: "+2348000000000",
		RoomID:     "12",
		CheckIn:    mustDate(t, "2025-03-01"),
		CheckOut:   mustDate(t, "2025-03-04"),
		Guests:     2,
		Source:     booking.SourceWeb,
	}

	t.Run("sends a pending booking and reads server amounts", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/bookings/public", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "pending", body["status"])
			assert.Equal(t, "pending", body["payment_status"])
			assert.Equal(t, "HTL-abc-1", body["transaction_ref"])
			assert.Equal(t, "2025-03-01", body["check_in"])
			assert.Equal(t, float64(2), body["guests"])

			writeJSON(w, http.StatusCreated, `{
				"booking":{"id":77,"transaction_ref":"HTL-abc-1","status":"pending"},
				"base_total":91500,"transaction_fee":1830,"total_amount":93330
			}`)
		})

		created, err := client.CreatePending(context.Background(), pending)

		require.NoError(t, err)
		assert.Equal(t, "77", created.ID)
		assert.Equal(t, booking.Reference("HTL-abc-1"), created.Reference)
		assert.Equal(t, booking.StatusPending, created.Status)
		assert.Equal(t, int64(9150000), created.Base.Minor())
		assert.Equal(t, int64(183000), created.Surcharge.Minor())
		assert.Equal(t, int64(9333000), created.Total.Minor())
	})

	t.Run("falls back to the request reference and nested total", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"booking":{"id":"78","amount":"93330"}}`)
		})

		created, err := client.CreatePending(context.Background(), pending)

		require.NoError(t, err)
		assert.Equal(t, pending.Reference, created.Reference)
		assert.Equal(t, booking.StatusPending, created.Status)
		assert.Equal(t, int64(9333000), created.Total.Minor())
	})

	t.Run("rejection carries the upstream message", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusConflict, `{"message":"room sold out"}`)
		})

		_, err := client.CreatePending(context.Background(), pending)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamRejected))
		assert.Contains(t, err.Error(), "room sold out")
	})
}

func TestGetByReference(t *testing.T) {
	ref := booking.Reference("HTL-abc-1")

	t.Run("nested booking with room object", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bookings/by-reference/HTL-abc-1", r.URL.Path)
			writeJSON(w, http.StatusOK, `{"booking":{
				"id":77,"tx_ref":"HTL-abc-1","guest_name":"Ada Obi","guest_email":"ada@example.com",
				"room":{"id":12,"name":"Deluxe"},"check_in":"2025-03-01T00:00:00.000Z","check_out":"2025-03-04",
				"guests":"2","status":"CONFIRMED","payment_status":"paid","total_amount":93330
			}}`)
		})

		rec, err := client.GetByReference(context.Background(), ref)

		require.NoError(t, err)
		assert.Equal(t, ref, rec.Reference)
		assert.Equal(t, "Deluxe", rec.RoomName)
		assert.Equal(t, "12", rec.RoomID)
		assert.Equal(t, mustDate(t, "2025-03-01"), rec.CheckIn)
		assert.Equal(t, mustDate(t, "2025-03-04"), rec.CheckOut)
		assert.Equal(t, 2, rec.Guests)
		assert.Equal(t, booking.StatusConfirmed, rec.Status)
		assert.Equal(t, booking.PaymentPaid, rec.PaymentStatus)
		assert.Equal(t, int64(9333000), rec.Total.Minor())
	})

	t.Run("bare booking object", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":"77","transaction_ref":"HTL-abc-1","room_type":"Suite"}`)
		})

		rec, err := client.GetByReference(context.Background(), ref)

		require.NoError(t, err)
		assert.Equal(t, "Suite", rec.RoomName)
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusNotFound, `{"message":"no such booking"}`)
		})

		_, err := client.GetByReference(context.Background(), ref)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("empty payload maps to not found", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{}`)
		})

		_, err := client.GetByReference(context.Background(), ref)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestVerify(t *testing.T) {
	ref := booking.Reference("HTL-abc-1")

	cases := []struct {
		name      string
		body      string
		confirmed bool
	}{
		{name: "success with successful data", body: `{"status":"success","data":{"status":"successful","amount":93330,"currency":"ngn","tx_ref":"HTL-abc-1","id":555}}`, confirmed: true},
		{name: "success without data status", body: `{"status":"success","data":{"amount":"93330"}}`, confirmed: true},
		{name: "success but data failed", body: `{"status":"success","data":{"status":"failed"}}`, confirmed: false},
		{name: "top level error", body: `{"status":"error","data":{"status":"successful"}}`, confirmed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/payments/verify", r.URL.Path)
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "HTL-abc-1", body["tx_ref"])
				assert.Equal(t, "555", body["transaction_id"])
				writeJSON(w, http.StatusOK, tc.body)
			})

			v, err := client.Verify(context.Background(), ref, "555")

			require.NoError(t, err)
			assert.Equal(t, tc.confirmed, v.Confirmed)
			assert.Equal(t, ref, v.Reference)
			assert.Equal(t, "555", v.TransactionID)
		})
	}

	t.Run("reads amount and currency", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"status":"success","data":{"status":"successful","charged_amount":93330,"currency":"ngn"}}`)
		})

		v, err := client.Verify(context.Background(), ref, "555")

		require.NoError(t, err)
		assert.Equal(t, int64(9333000), v.Amount.Minor())
		assert.Equal(t, "NGN", v.Currency)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		client := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"message":"unknown transaction"}`)
		})

		_, err := client.Verify(context.Background(), ref, "555")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamRejected))
	})
}
