package bootstrap

import (
	"log/slog"

	"kost-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(LogBookingConfig),
)

// LogBookingConfig records the settings that shape flow behaviour. Secrets are never logged.
func LogBookingConfig(cfg config.Config, logger *slog.Logger) {
	methods := cfg.Booking.PaymentMethods
	if len(methods) == 0 {
		methods = []string{"all"}
	}
	logger.Info("booking configuration loaded",
		"timezone", cfg.Booking.Location().String(),
		"settlement_timeout", cfg.Booking.SettlementTimeout,
		"flow_idle_ttl", cfg.Booking.FlowIdleTTL,
		"sweep_interval", cfg.Booking.SweepInterval,
		"payment_methods", methods,
		"declined_methods", cfg.Settlement.DeclinedMethods,
	)
}
