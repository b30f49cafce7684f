package components

import (
	"workspace-booking/internal/handler"
	"workspace-booking/internal/handler/api"
	"workspace-booking/internal/handler/dto/request"
	"workspace-booking/internal/handler/middleware"
	"workspace-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfficeHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(auth *api.AuthHandler, office *api.OfficeHandler, booking *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Office: office, Booking: booking}
		},
	),
	fx.Invoke(
		request.RegisterValidators,
		handler.NewRouter,
	),
)
