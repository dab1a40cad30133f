package components

import (
	"kost-booking/internal/handler"
	"kost-booking/internal/handler/api"
	"kost-booking/internal/handler/middleware"
	"kost-booking/internal/pkg/validator"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingFlowHandler,
		api.NewBookingHandler,
		api.NewPaymentMethodHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		validator.UseJSONNamesInBinding,
		handler.NewRouter,
	),
)
