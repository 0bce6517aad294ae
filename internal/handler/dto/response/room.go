package response

import (
	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/usecase/queries"
)

type RoomResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NightlyRate float64 `json:"price_per_night"`
	Remaining   *int    `json:"remaining,omitempty"`
}

func FromRoomOptions(rooms []booking.RoomOption) []*RoomResponse {
	res := make([]*RoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = &RoomResponse{
			ID:          r.ID,
			Name:        r.Name,
			NightlyRate: r.NightlyRate.Major(),
			Remaining:   r.Remaining,
		}
	}
	return res
}

type QuoteResponse struct {
	Room      *RoomResponse `json:"room"`
	CheckIn   string        `json:"check_in"`
	CheckOut  string        `json:"check_out"`
	Nights    int           `json:"nights"`
	Base      float64       `json:"base_total"`
	Surcharge float64       `json:"transaction_fee"`
	Total     float64       `json:"total_amount"`
	Currency  string        `json:"currency"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		Room:      FromRoomOptions([]booking.RoomOption{v.Room})[0],
		CheckIn:   booking.FormatDate(v.CheckIn),
		CheckOut:  booking.FormatDate(v.CheckOut),
		Nights:    v.Quote.Nights,
		Base:      v.Quote.Base.Major(),
		Surcharge: v.Quote.Surcharge.Major(),
		Total:     v.Quote.Total.Major(),
		Currency:  v.Currency,
	}
}
