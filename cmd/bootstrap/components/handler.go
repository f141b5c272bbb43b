package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewRequestHandler,
		func(
			users *api.UserHandler,
			items *api.ItemHandler,
			bookings *api.BookingHandler,
			requests *api.RequestHandler,
		) handler.Handlers {
			return handler.Handlers{
				Users:    users,
				Items:    items,
				Bookings: bookings,
				Requests: requests,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
