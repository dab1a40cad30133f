package pgstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Property struct {
	ID           uuid.UUID
	Title        string
	Address      string
	City         string
	Price        int64
	RentalPeriod string
	Available    bool
	CreatedAt    pgtype.Timestamptz
}

type Booking struct {
	ID                  uuid.UUID
	PropertyID          uuid.UUID
	TenantID            uuid.UUID
	CheckInDate         pgtype.Date
	EndDate             pgtype.Date
	Duration            int32
	DurationUnit        string
	Status              string
	TotalPrice          int64
	DiscountTier        string
	PaymentStatus       string
	PaymentMethodID     string
	SettlementReference string
	ContactName         string
	ContactEmail        string
	ContactPhone        string
	Note                pgtype.Text
	CreatedAt           pgtype.Timestamptz
}
