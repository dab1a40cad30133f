package repository

import (
	"context"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/infra"
	"kost-booking/internal/infra/pgstore"
	"kost-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateBookingParams) (uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx pgstore.DBTX, rec *booking.Record) (uuid.UUID, error) {
	params, err := converter.BookingToInfra(rec)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
	}

	id, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}
