package pgstore

import (
	"context"

	"github.com/google/uuid"
)

const getPropertyByID = `-- name: GetPropertyByID :one
SELECT id, title, address, city, price, rental_period, available, created_at
FROM properties
WHERE id = $1
`

func (q *Queries) GetPropertyByID(ctx context.Context, db DBTX, id uuid.UUID) (Property, error) {
	row := db.QueryRow(ctx, getPropertyByID, id)
	var i Property
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Address,
		&i.City,
		&i.Price,
		&i.RentalPeriod,
		&i.Available,
		&i.CreatedAt,
	)
	return i, err
}
