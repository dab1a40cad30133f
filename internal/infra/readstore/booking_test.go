//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"kost-booking/internal/infra"
	"kost-booking/internal/infra/pgstore"
	"kost-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) GetBookingByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.BookingViewRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgstore.BookingViewRow), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsByTenantFirstPage(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByTenantFirstPageParams) ([]pgstore.BookingViewRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgstore.BookingViewRow), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsByTenantKeyset(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByTenantKeysetParams) ([]pgstore.BookingViewRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgstore.BookingViewRow), args.Error(1)
}

func bookingRow(tenantID uuid.UUID, createdAt time.Time) pgstore.BookingViewRow {
	return pgstore.BookingViewRow{
		Booking: pgstore.Booking{
			ID:                  uuid.New(),
			PropertyID:          uuid.New(),
			TenantID:            tenantID,
			CheckInDate:         pgconv.DateToPgtype(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
			EndDate:             pgconv.DateToPgtype(time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)),
			Duration:            6,
			DurationUnit:        "monthly",
			Status:              "confirmed",
			TotalPrice:          8_550_000,
			DiscountTier:        "six_month_plus",
			PaymentStatus:       "paid",
			PaymentMethodID:     "bca",
			SettlementReference: "STL-0123456789ABCDEF",
			ContactName:         "Budi Santoso",
			ContactEmail:        "budi@example.com",
			ContactPhone:        "081234567890",
			CreatedAt:           pgconv.TimeToPgtype(createdAt),
		},
		PropertyTitle:   "Kost Melati",
		PropertyAddress: "Jl. Kaliurang KM 5",
		PropertyCity:    "Yogyakarta",
	}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	tenantID := uuid.New()
	row := bookingRow(tenantID, time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		mockRow   pgstore.BookingViewRow
		mockErr   error
		wantKind  infra.RepositoryErrorKind
		wantError bool
	}{
		{name: "success", mockRow: row},
		{name: "not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound, wantError: true},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure, wantError: true},
		{
			name: "corrupt duration unit",
			mockRow: func() pgstore.BookingViewRow {
				r := row
				r.DurationUnit = "weekly"
				return r
			}(),
			wantKind:  infra.KindDBFailure,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBookingReadQueries)
			q.On("GetBookingByID", mock.Anything, nil, row.ID).Return(tt.mockRow, tt.mockErr)
			store := NewBookingReadStore(q, nil)

			got, err := store.FindByID(context.Background(), row.ID)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, got.ID)
			assert.Equal(t, tenantID, got.TenantID)
			assert.Equal(t, "Kost Melati", got.PropertyTitle)
			assert.Equal(t, "6 months", got.DurationLabel)
			assert.Equal(t, "Rp 8.550.000", got.TotalPriceText)
			assert.Equal(t, "2025-12-02", got.EndDate.Format(time.DateOnly))
			assert.Nil(t, got.Note)
			q.AssertExpectations(t)
		})
	}
}

func TestBookingReadStore_FindByTenantKeyset(t *testing.T) {
	tenantID := uuid.New()
	lastID := uuid.New()
	lastCreatedAt := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)
	older := bookingRow(tenantID, lastCreatedAt.Add(-time.Hour))
	older.Note = pgconv.StringToPgtype("arrive late")

	q := new(MockBookingReadQueries)
	q.On("ListBookingsByTenantKeyset", mock.Anything, nil, pgstore.ListBookingsByTenantKeysetParams{
		TenantID:  tenantID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     11,
	}).Return([]pgstore.BookingViewRow{older}, nil)
	store := NewBookingReadStore(q, nil)

	got, err := store.FindByTenantKeyset(context.Background(), tenantID, lastCreatedAt, lastID, 11)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, older.ID, got[0].ID)
	require.NotNil(t, got[0].Note)
	assert.Equal(t, "arrive late", *got[0].Note)
	q.AssertExpectations(t)
}

func TestBookingReadStore_FindByTenantFirstPage_Error(t *testing.T) {
	q := new(MockBookingReadQueries)
	q.On("ListBookingsByTenantFirstPage", mock.Anything, nil, mock.Anything).Return([]pgstore.BookingViewRow(nil), assert.AnError)
	store := NewBookingReadStore(q, nil)

	got, err := store.FindByTenantFirstPage(context.Background(), uuid.New(), 21)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Nil(t, got)
}
