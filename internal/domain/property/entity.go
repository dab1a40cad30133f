package property

import (
	"errors"
	"strings"

	"kost-booking/internal/domain/shared/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errors.New("property title cannot be empty")
	ErrTitleTooLong        = errors.New("property title is too long (max 255 characters)")
	ErrInvalidRentalPeriod = errors.New("invalid rental period")
)

const (
	MaxTitleLength = 255
)

type RentalPeriod string

const (
	RentalDaily   RentalPeriod = "daily"
	RentalMonthly RentalPeriod = "monthly"
	RentalYearly  RentalPeriod = "yearly"
)

func (p RentalPeriod) IsValid() bool {
	switch p {
	case RentalDaily, RentalMonthly, RentalYearly:
		return true
	default:
		return false
	}
}

func (p RentalPeriod) String() string {
	return string(p)
}

// Property is the catalog's listing as seen by the booking core. It is never mutated here.
type Property struct {
	id           uuid.UUID
	title        string
	address      string
	city         string
	price        money.Money
	rentalPeriod RentalPeriod
	available    bool
}

func NewProperty(
	id uuid.UUID,
	title, address, city string,
	priceAmount int64,
	rentalPeriod string,
	available bool,
) (*Property, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}

	price, err := money.New(priceAmount)
	if err != nil {
		return nil, err
	}

	period := RentalPeriod(rentalPeriod)
	if !period.IsValid() {
		return nil, ErrInvalidRentalPeriod
	}

	return &Property{
		id:           id,
		title:        title,
		address:      strings.TrimSpace(address),
		city:         strings.TrimSpace(city),
		price:        price,
		rentalPeriod: period,
		available:    available,
	}, nil
}

func (p *Property) ID() uuid.UUID              { return p.id }
func (p *Property) Title() string              { return p.title }
func (p *Property) Address() string            { return p.address }
func (p *Property) City() string               { return p.city }
func (p *Property) Price() money.Money         { return p.price }
func (p *Property) RentalPeriod() RentalPeriod { return p.rentalPeriod }
func (p *Property) IsAvailable() bool          { return p.available }
