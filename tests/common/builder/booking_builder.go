//go:build unit || e2e

package builder

import (
	"time"

	"kost-booking/internal/infra/pgstore"
	"kost-booking/internal/pkg/pgconv"
	"kost-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder defaults to a confirmed six month stay with the 5% discount applied.
type BookingBuilder struct {
	ID                  uuid.UUID
	PropertyID          uuid.UUID
	TenantID            uuid.UUID
	CheckInDate         time.Time
	EndDate             time.Time
	Duration            int
	DurationUnit        string
	TotalPrice          int64
	DiscountTier        string
	PaymentMethodID     string
	SettlementReference string
	ContactName         string
	ContactEmail        string
	ContactPhone        string
	Note                *string
	CreatedAt           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:                  uuid.New(),
		PropertyID:          uuid.New(),
		TenantID:            uuid.New(),
		CheckInDate:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC),
		Duration:            6,
		DurationUnit:        "monthly",
		TotalPrice:          8_550_000,
		DiscountTier:        "six_month_plus",
		PaymentMethodID:     "bca",
		SettlementReference: "STL-0123456789ABCDEF",
		ContactName:         "Budi Santoso",
		ContactEmail:        "budi@example.com",
		ContactPhone:        "081234567890",
		CreatedAt:           time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ForTenant(id uuid.UUID) *BookingBuilder {
	b.TenantID = id
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                  b.ID,
		PropertyID:          b.PropertyID,
		PropertyTitle:       "Kost Putri Harmoni",
		PropertyAddress:     "Jl. Harmoni No. 123",
		PropertyCity:        "Jakarta Pusat",
		TenantID:            b.TenantID,
		CheckInDate:         b.CheckInDate,
		EndDate:             b.EndDate,
		Duration:            b.Duration,
		DurationUnit:        b.DurationUnit,
		DurationLabel:       "6 months",
		TotalPrice:          b.TotalPrice,
		TotalPriceText:      "Rp 8.550.000",
		DiscountTier:        b.DiscountTier,
		Status:              "confirmed",
		PaymentStatus:       "paid",
		PaymentMethodID:     b.PaymentMethodID,
		SettlementReference: b.SettlementReference,
		ContactName:         b.ContactName,
		ContactEmail:        b.ContactEmail,
		ContactPhone:        b.ContactPhone,
		Note:                b.Note,
		CreatedAt:           b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildInfra() pgstore.Booking {
	return pgstore.Booking{
		ID:                  b.ID,
		PropertyID:          b.PropertyID,
		TenantID:            b.TenantID,
		CheckInDate:         pgconv.DateToPgtype(b.CheckInDate),
		EndDate:             pgconv.DateToPgtype(b.EndDate),
		Duration:            int32(b.Duration),
		DurationUnit:        b.DurationUnit,
		Status:              "confirmed",
		TotalPrice:          b.TotalPrice,
		DiscountTier:        b.DiscountTier,
		PaymentStatus:       "paid",
		PaymentMethodID:     b.PaymentMethodID,
		SettlementReference: b.SettlementReference,
		ContactName:         b.ContactName,
		ContactEmail:        b.ContactEmail,
		ContactPhone:        b.ContactPhone,
		Note:                pgconv.StringPtrToPgtype(b.Note),
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt),
	}
}
