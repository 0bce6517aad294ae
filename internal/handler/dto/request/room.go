package request

import (
	"time"

	"hotel-booking-gateway/internal/domain/booking"
)

type StayQuery struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
}

func (q StayQuery) Dates() (checkIn, checkOut time.Time, err error) {
	if checkIn, err = booking.ParseDate(q.CheckIn); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if checkOut, err = booking.ParseDate(q.CheckOut); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

type QuoteQuery struct {
	StayQuery
	RoomID string `form:"room_id" binding:"required"`
}
