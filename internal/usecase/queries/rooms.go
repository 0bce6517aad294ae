package queries

//go:generate mockgen -source=rooms.go -destination=../../../tests/mock/queries/rooms.go -package=queriesmock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/pkg/errs"
)

var (
	ErrInvalidStay        = errs.New("invalid stay dates")
	ErrRoomNotFound       = errs.New("room not found")
	ErrCatalogUnavailable = errs.New("room catalog unavailable")
)

type QuoteView struct {
	Room     booking.RoomOption
	CheckIn  time.Time
	CheckOut time.Time
	Quote    booking.Quote
	Currency string
}

type RoomQueries interface {
	ListRooms(ctx context.Context, checkIn, checkOut time.Time) ([]booking.RoomOption, error)
	Quote(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*QuoteView, error)
}

type roomQueriesImpl struct {
	catalog  RoomCatalog
	cache    RoomCache
	fees     booking.FeeCalculator
	currency string
	timeout  time.Duration
}

func NewRoomQueries(catalog RoomCatalog, cache RoomCache, fees booking.FeeCalculator, cfg config.Config) RoomQueries {
	return &roomQueriesImpl{
		catalog:  catalog,
		cache:    cache,
		fees:     fees,
		currency: cfg.Payment.Currency,
		timeout:  cfg.Upstream.Timeout,
	}
}

// ListRooms accepts an open stay (both dates zero) or a valid range. Cache
// failures fall through to the catalog.
func (q *roomQueriesImpl) ListRooms(ctx context.Context, checkIn, checkOut time.Time) ([]booking.RoomOption, error) {
	if checkIn.IsZero() != checkOut.IsZero() {
		return nil, ErrInvalidStay
	}
	if !checkIn.IsZero() && !checkIn.Before(checkOut) {
		return nil, ErrInvalidStay
	}

	rooms, hit, err := q.cache.Get(ctx, checkIn, checkOut)
	if err != nil {
		slog.Warn("room cache read failed", "error", err)
	}
	if hit {
		return rooms, nil
	}

	fetchCtx := ctx
	if q.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	rooms, err = q.catalog.ListRooms(fetchCtx, checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list rooms"), ErrCatalogUnavailable)
	}

	if err := q.cache.Set(ctx, checkIn, checkOut, rooms); err != nil {
		slog.Warn("room cache write failed", "error", err)
	}
	return rooms, nil
}

func (q *roomQueriesImpl) Quote(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*QuoteView, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return nil, ErrRoomNotFound
	}
	if checkIn.IsZero() || checkOut.IsZero() || booking.NightsBetween(checkIn, checkOut) <= 0 {
		return nil, ErrInvalidStay
	}

	rooms, err := q.ListRooms(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	for _, room := range rooms {
		if room.ID != roomID {
			continue
		}
		return &QuoteView{
			Room:     room,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Quote:    q.fees.Quote(room.NightlyRate, booking.NightsBetween(checkIn, checkOut)),
			Currency: q.currency,
		}, nil
	}
	return nil, ErrRoomNotFound
}
