// Package settlement adapts payment providers to the booking flow's settlement port.
package settlement

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kost-booking/internal/pkg/config"
	"kost-booking/internal/pkg/errs"
	"kost-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Simulated stands in for a payment provider: it waits a fixed delay, then succeeds unless the
// method is configured as declined.
type Simulated struct {
	delay    time.Duration
	declined map[string]struct{}
	logger   *slog.Logger
}

func NewSimulated(cfg config.SettlementConfig, logger *slog.Logger) *Simulated {
	declined := make(map[string]struct{}, len(cfg.DeclinedMethods))
	for _, id := range cfg.DeclinedMethods {
		if id = strings.TrimSpace(id); id != "" {
			declined[id] = struct{}{}
		}
	}
	return &Simulated{
		delay:    cfg.SimulatedDelay,
		declined: declined,
		logger:   logger,
	}
}

func (s *Simulated) Settle(ctx context.Context, req commands.SettlementRequest) (commands.SettlementReceipt, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return commands.SettlementReceipt{}, errs.Wrap(ctx.Err(), "settlement wait interrupted")
	case <-timer.C:
	}

	if _, ok := s.declined[req.MethodID]; ok {
		s.logger.Info("simulated settlement declined",
			"flow_id", req.FlowID, "attempt", req.Attempt, "method", req.MethodID)
		return commands.SettlementReceipt{}, errs.Mark(
			errs.Newf("payment via %s was declined", req.MethodID),
			errs.ErrSettlementFailed,
		)
	}

	return commands.SettlementReceipt{
		Reference: "STL-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16]),
	}, nil
}
