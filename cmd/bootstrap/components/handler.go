package components

import (
	"majestic-manor/internal/handler"
	"majestic-manor/internal/handler/api"
	"majestic-manor/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewBillingHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
	billing *api.BillingHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Room:    room,
		Booking: booking,
		Payment: payment,
		Billing: billing,
	}
}
