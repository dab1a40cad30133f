package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (
    id, property_id, tenant_id, check_in_date, end_date, duration, duration_unit,
    status, total_price, discount_tier, payment_status, payment_method_id,
    settlement_reference, contact_name, contact_email, contact_phone, note, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
)
RETURNING id
`

type CreateBookingParams struct {
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

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.PropertyID,
		arg.TenantID,
		arg.CheckInDate,
		arg.EndDate,
		arg.Duration,
		arg.DurationUnit,
		arg.Status,
		arg.TotalPrice,
		arg.DiscountTier,
		arg.PaymentStatus,
		arg.PaymentMethodID,
		arg.SettlementReference,
		arg.ContactName,
		arg.ContactEmail,
		arg.ContactPhone,
		arg.Note,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const bookingViewColumns = `
    b.id, b.property_id, p.title AS property_title, p.address AS property_address, p.city AS property_city,
    b.tenant_id, b.check_in_date, b.end_date, b.duration, b.duration_unit, b.status, b.total_price,
    b.discount_tier, b.payment_status, b.payment_method_id, b.settlement_reference,
    b.contact_name, b.contact_email, b.contact_phone, b.note, b.created_at
`

const getBookingByID = `-- name: GetBookingByID :one
SELECT` + bookingViewColumns + `FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.id = $1
`

type BookingViewRow struct {
	Booking
	PropertyTitle   string
	PropertyAddress string
	PropertyCity    string
}

func scanBookingView(row interface{ Scan(dest ...any) error }) (BookingViewRow, error) {
	var i BookingViewRow
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.PropertyTitle,
		&i.PropertyAddress,
		&i.PropertyCity,
		&i.TenantID,
		&i.CheckInDate,
		&i.EndDate,
		&i.Duration,
		&i.DurationUnit,
		&i.Status,
		&i.TotalPrice,
		&i.DiscountTier,
		&i.PaymentStatus,
		&i.PaymentMethodID,
		&i.SettlementReference,
		&i.ContactName,
		&i.ContactEmail,
		&i.ContactPhone,
		&i.Note,
		&i.CreatedAt,
	)
	return i, err
}

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingByID, id))
}

const listBookingsByTenantFirstPage = `-- name: ListBookingsByTenantFirstPage :many
SELECT` + bookingViewColumns + `FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.tenant_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2
`

type ListBookingsByTenantFirstPageParams struct {
	TenantID uuid.UUID
	Limit    int32
}

func (q *Queries) ListBookingsByTenantFirstPage(ctx context.Context, db DBTX, arg ListBookingsByTenantFirstPageParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingsByTenantFirstPage, arg.TenantID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

const listBookingsByTenantKeyset = `-- name: ListBookingsByTenantKeyset :many
SELECT` + bookingViewColumns + `FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.tenant_id = $1
  AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4
`

type ListBookingsByTenantKeysetParams struct {
	TenantID  uuid.UUID
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

func (q *Queries) ListBookingsByTenantKeyset(ctx context.Context, db DBTX, arg ListBookingsByTenantKeysetParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingsByTenantKeyset, arg.TenantID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]BookingViewRow, error) {
	defer rows.Close()
	items := []BookingViewRow{}
	for rows.Next() {
		i, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
