//go:build unit || e2e

package builder

import (
	"time"

	"kost-booking/internal/domain/property"
	"kost-booking/internal/infra/pgstore"
	"kost-booking/internal/pkg/pgconv"
	"kost-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID           uuid.UUID
	Title        string
	Address      string
	City         string
	Price        int64
	RentalPeriod string
	Available    bool
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:           uuid.New(),
		Title:        "Kost Putri Harmoni",
		Address:      "Jl. Harmoni No. 123",
		City:         "Jakarta Pusat",
		Price:        1_500_000,
		RentalPeriod: "monthly",
		Available:    true,
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) Unavailable() *PropertyBuilder {
	b.Available = false
	return b
}

func (b *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.NewProperty(b.ID, b.Title, b.Address, b.City, b.Price, b.RentalPeriod, b.Available)
}

func (b *PropertyBuilder) BuildSnapshot() *shared.PropertySnapshot {
	return &shared.PropertySnapshot{
		ID:           b.ID,
		Title:        b.Title,
		Address:      b.Address,
		City:         b.City,
		Price:        b.Price,
		RentalPeriod: b.RentalPeriod,
		Available:    b.Available,
	}
}

func (b *PropertyBuilder) BuildInfra() pgstore.Property {
	return pgstore.Property{
		ID:           b.ID,
		Title:        b.Title,
		Address:      b.Address,
		City:         b.City,
		Price:        b.Price,
		RentalPeriod: b.RentalPeriod,
		Available:    b.Available,
		CreatedAt:    pgconv.TimeToPgtype(time.Now()),
	}
}
