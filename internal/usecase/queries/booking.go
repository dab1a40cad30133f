package queries

import (
	"context"
	"time"

	"kost-booking/internal/domain/user"
	"kost-booking/internal/infra"
	"kost-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

// BookingView is a stored booking as shown to its tenant.
type BookingView struct {
	ID                  uuid.UUID
	PropertyID          uuid.UUID
	PropertyTitle       string
	PropertyAddress     string
	PropertyCity        string
	TenantID            uuid.UUID
	CheckInDate         time.Time
	EndDate             time.Time
	Duration            int
	DurationUnit        string
	DurationLabel       string
	TotalPrice          int64
	TotalPriceText      string
	DiscountTier        string
	Status              string
	PaymentStatus       string
	PaymentMethodID     string
	SettlementReference string
	ContactName         string
	ContactEmail        string
	ContactPhone        string
	Note                *string
	CreatedAt           time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByTenantFirstPage(ctx context.Context, tenantID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByTenantKeyset(ctx context.Context, tenantID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Identity, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor user.Identity, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

// GetByID answers not found for bookings of other tenants; admins see every booking.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Identity, id uuid.UUID) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if b.TenantID != actor.ID && actor.Role != user.RoleAdmin {
		return nil, errs.ErrBookingNotFound
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor user.Identity, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByTenantFirstPage(ctx, actor.ID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, ErrInvalidCursor)
		}
		rows, err = q.repo.FindByTenantKeyset(ctx, actor.ID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
