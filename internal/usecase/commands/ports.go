package commands

import (
	"context"

	"kost-booking/internal/domain/shared/money"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// SettlementRequest is one payment attempt handed to the provider.
type SettlementRequest struct {
	FlowID   uuid.UUID
	Attempt  int
	Amount   money.Money
	MethodID string
}

type SettlementReceipt struct {
	Reference string
}

// SettlementGateway blocks until the provider answers or ctx ends. Declines are marked with
// errs.ErrSettlementFailed; an expired ctx means the outcome is unknown.
type SettlementGateway interface {
	Settle(ctx context.Context, req SettlementRequest) (SettlementReceipt, error)
}
