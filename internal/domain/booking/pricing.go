package booking

import (
	"errors"

	"kost-booking/internal/domain/shared/money"
)

type DiscountTier string

const (
	TierNone         DiscountTier = "none"
	TierSixMonthPlus DiscountTier = "six_month_plus"
	TierAnnualPlus   DiscountTier = "annual_plus"
)

func (t DiscountTier) String() string {
	return string(t)
}

// Rate in basis points.
func (t DiscountTier) Rate() int64 {
	switch t {
	case TierSixMonthPlus:
		return 500
	case TierAnnualPlus:
		return 1_000
	default:
		return 0
	}
}

func (t DiscountTier) IsValid() bool {
	switch t {
	case TierNone, TierSixMonthPlus, TierAnnualPlus:
		return true
	default:
		return false
	}
}

type Quote struct {
	Subtotal     money.Money
	Discount     money.Money
	Total        money.Money
	DiscountRate int64
	Tier         DiscountTier
}

// RatePercent is the discount rate as a whole percentage.
func (q Quote) RatePercent() int64 {
	return q.DiscountRate / 100
}

type PriceCalculator interface {
	Quote(base money.Money, count int, unit DurationUnit) (Quote, error)
}

// PricingEngine applies the long-stay discount tiers to a unit price.
type PricingEngine struct{}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// TierFor returns the first matching tier: yearly stays, then six months or more.
func TierFor(count int, unit DurationUnit) DiscountTier {
	switch {
	case unit == UnitYearly && count >= 1:
		return TierAnnualPlus
	case unit == UnitMonthly && count >= 6:
		return TierSixMonthPlus
	default:
		return TierNone
	}
}

func (e *PricingEngine) Quote(base money.Money, count int, unit DurationUnit) (Quote, error) {
	if count <= 0 {
		return Quote{}, ErrInvalidDuration
	}
	if !unit.IsValid() {
		return Quote{}, ErrInvalidDurationUnit
	}
	if base.Amount() < 0 {
		return Quote{}, ErrNegativePrice
	}

	subtotal, err := base.Times(int64(count))
	if err != nil {
		return Quote{}, mapMoneyErr(err)
	}

	tier := TierFor(count, unit)
	rate := tier.Rate()
	total, err := subtotal.ScaleBasisPoints(money.BasisPointsScale - rate)
	if err != nil {
		return Quote{}, mapMoneyErr(err)
	}

	return Quote{
		Subtotal:     subtotal,
		Discount:     subtotal.Sub(total),
		Total:        total,
		DiscountRate: rate,
		Tier:         tier,
	}, nil
}

func mapMoneyErr(err error) error {
	switch {
	case errors.Is(err, money.ErrOverflow):
		return ErrAmountOverflow
	case errors.Is(err, money.ErrNegativeAmount):
		return ErrNegativePrice
	default:
		return err
	}
}
