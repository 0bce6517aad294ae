package components

import (
	"hotel-booking-gateway/internal/handler"
	"hotel-booking-gateway/internal/handler/api"
	"hotel-booking-gateway/internal/handler/middleware"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/pkg/session"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewSessionManager,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewRoomHandler,
		api.NewSessionHandler,
		api.NewAdminHandler,
		middleware.NewSessionMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewSessionManager(cfg config.Config) *session.Manager {
	return session.NewManager(cfg.Session)
}

type handlerParams struct {
	fx.In

	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Room    *api.RoomHandler
	Session *api.SessionHandler
	Admin   *api.AdminHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Booking: p.Booking,
		Payment: p.Payment,
		Room:    p.Room,
		Session: p.Session,
		Admin:   p.Admin,
	}
}
