package bootstrap

import (
	"log/slog"

	"kost-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Module is the production graph. The gin engine is supplied by the caller.
var Module = fx.Options(
	LoggerModule,
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
		l := &fxevent.SlogLogger{Logger: logger}
		l.UseLogLevel(slog.LevelDebug)
		return l
	}),
)
