package components

import (
	"context"
	"log/slog"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/domain/payment"
	"kost-booking/internal/infra/flowstore"
	"kost-booking/internal/infra/settlement"
	"kost-booking/internal/pkg/clock"
	"kost-booking/internal/pkg/config"
	"kost-booking/internal/usecase"
	"kost-booking/internal/usecase/commands"
	"kost-booking/internal/usecase/queries"
	"kost-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewPricingEngine,
		fx.As(new(booking.PriceCalculator)),
	),
	NewPaymentCatalog,
	func(clk clock.Clock, pricing booking.PriceCalculator, catalog *payment.Catalog, cfg config.Config) *booking.Factory {
		return booking.NewFactory(clk, pricing, catalog, cfg.Booking.Location())
	},
	booking.NewProjector,
	fx.Annotate(
		flowstore.NewMemory[uuid.UUID, *shared.Session],
		fx.As(new(shared.SessionStore)),
	),
	fx.Annotate(
		func(cfg config.Config, logger *slog.Logger) *settlement.Simulated {
			return settlement.NewSimulated(cfg.Settlement, logger)
		},
		fx.As(new(commands.SettlementGateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			NewBookingFlowService,
			fx.As(new(commands.BookingFlowCommands)),
			fx.As(new(commands.FlowLifecycle)),
		),
	),
	fx.Invoke(RegisterFlowLifecycle),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFlowQueries,
		queries.NewBookingQueries,
		queries.NewPaymentMethodQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewPaymentCatalog restricts the default catalog to BOOKING_PAYMENT_METHODS when set.
func NewPaymentCatalog(cfg config.Config) (*payment.Catalog, error) {
	return payment.DefaultCatalog().Restrict(cfg.Booking.PaymentMethods)
}

func NewBookingFlowService(
	uow shared.UnitOfWork,
	sessions shared.SessionStore,
	gateway commands.SettlementGateway,
	factory *booking.Factory,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) commands.BookingFlowService {
	return commands.NewBookingFlowCommands(uow, sessions, gateway, factory, clk, cfg.Booking, logger)
}

func RegisterFlowLifecycle(lc fx.Lifecycle, flows commands.FlowLifecycle, cfg config.Config, logger *slog.Logger) {
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go flows.RunSweeper(sweepCtx, cfg.Booking.SweepInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopSweep()
			if err := flows.Shutdown(ctx); err != nil {
				logger.Warn("booking flows did not drain before shutdown", "error", err)
				return err
			}
			return nil
		},
	})
}
