package booking

import (
	"time"

	"kost-booking/internal/domain/payment"
	"kost-booking/internal/domain/property"
	"kost-booking/internal/domain/user"
	"kost-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock    clock.Clock
	Pricing  PriceCalculator
	Catalog  *payment.Catalog
	Location *time.Location
}

func NewFactory(clk clock.Clock, pricing PriceCalculator, catalog *payment.Catalog, loc *time.Location) *Factory {
	if loc == nil {
		loc = time.UTC
	}
	return &Factory{
		Clock:    clk,
		Pricing:  pricing,
		Catalog:  catalog,
		Location: loc,
	}
}

// Open starts a draft for tenant on prop: check-in tomorrow, one unit of the property's rental
// period, contact prefilled from the caller's identity.
func (f *Factory) Open(tenant user.Identity, prop *property.Property) (*Draft, error) {
	if !tenant.CanBook() {
		return nil, ErrNotBookable
	}
	if !prop.IsAvailable() {
		return nil, ErrPropertyUnavailable
	}

	d := &Draft{
		id:       uuid.New(),
		tenantID: tenant.ID,
		property: prop,
		checkIn:  clock.Today(f.Clock, f.Location).AddDate(0, 0, 1),
		duration: 1,
		unit:     UnitFromRentalPeriod(prop.RentalPeriod()),
		contact: Contact{
			FullName: tenant.FullName,
			Email:    tenant.Email,
		},
		selector: payment.NewSelector(f.Catalog),
		step:     StepDetails,
		services: f,
	}
	if _, err := d.Quote(); err != nil {
		return nil, err
	}
	return d, nil
}
