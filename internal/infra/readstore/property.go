package readstore

import (
	"context"

	"kost-booking/internal/infra"
	"kost-booking/internal/infra/pgstore"
	"kost-booking/internal/pkg/pgconv"
	"kost-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyReadQueries interface {
	GetPropertyByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Property, error)
}

type PropertyReadStore struct {
	queries PropertyReadQueries
	db      pgstore.DBTX
}

func NewPropertyReadStore(queries PropertyReadQueries, db pgstore.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}

	return &shared.PropertySnapshot{
		ID:           row.ID,
		Title:        row.Title,
		Address:      row.Address,
		City:         row.City,
		Price:        row.Price,
		RentalPeriod: row.RentalPeriod,
		Available:    row.Available,
	}, nil
}
