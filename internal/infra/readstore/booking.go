package readstore

import (
	"context"
	"time"

	"kost-booking/internal/infra"
	"kost-booking/internal/infra/pgstore"
	"kost-booking/internal/infra/repository/converter"
	"kost-booking/internal/pkg/pgconv"
	"kost-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.BookingViewRow, error)
	ListBookingsByTenantFirstPage(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByTenantFirstPageParams) ([]pgstore.BookingViewRow, error)
	ListBookingsByTenantKeyset(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByTenantKeysetParams) ([]pgstore.BookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      pgstore.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db pgstore.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return toBookingView(row)
}

func (r *BookingReadStore) FindByTenantFirstPage(ctx context.Context, tenantID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByTenantFirstPage(ctx, r.db, pgstore.ListBookingsByTenantFirstPageParams{
		TenantID: tenantID,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by tenant", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindByTenantKeyset(ctx context.Context, tenantID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByTenantKeyset(ctx, r.db, pgstore.ListBookingsByTenantKeysetParams{
		TenantID:  tenantID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by tenant (keyset)", err)
	}
	return toBookingViews(rows)
}

func toBookingViews(rows []pgstore.BookingViewRow) ([]*queries.BookingView, error) {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func toBookingView(row pgstore.BookingViewRow) (*queries.BookingView, error) {
	rec, err := converter.BookingFromInfra(row.Booking)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking row", err, infra.KindDBFailure)
	}

	v := &queries.BookingView{
		ID:                  rec.ID(),
		PropertyID:          rec.PropertyID(),
		PropertyTitle:       row.PropertyTitle,
		PropertyAddress:     row.PropertyAddress,
		PropertyCity:        row.PropertyCity,
		TenantID:            rec.TenantID(),
		CheckInDate:         rec.CheckIn(),
		EndDate:             rec.EndDate(),
		Duration:            rec.Duration(),
		DurationUnit:        rec.Unit().String(),
		DurationLabel:       rec.Unit().Label(rec.Duration()),
		TotalPrice:          rec.TotalPrice().Amount(),
		TotalPriceText:      rec.TotalPrice().Format(),
		DiscountTier:        rec.Tier().String(),
		Status:              rec.Status().String(),
		PaymentStatus:       rec.PaymentStatus().String(),
		PaymentMethodID:     rec.PaymentMethodID(),
		SettlementReference: rec.SettlementReference(),
		ContactName:         rec.Contact().FullName,
		ContactEmail:        rec.Contact().Email,
		ContactPhone:        rec.Contact().PhoneNumber,
		CreatedAt:           rec.CreatedAt(),
	}
	if note := rec.Note(); note != "" {
		v.Note = &note
	}
	return v, nil
}
