package shared

import (
	"context"
	"time"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/infra/pgstore"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Notifications() NotificationRepository
	DB() pgstore.DBTX
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgstore.DBTX, rec *booking.Record) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgstore.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
}
