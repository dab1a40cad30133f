//go:build unit

package booking_test

import (
	"math"
	"testing"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/domain/shared/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingEngine_Quote(t *testing.T) {
	engine := booking.NewPricingEngine()
	base := money.Must(1_500_000)

	cases := []struct {
		name     string
		count    int
		unit     booking.DurationUnit
		total    int64
		discount int64
		rate     int64
		tier     booking.DiscountTier
	}{
		{name: "six months gets five percent", count: 6, unit: booking.UnitMonthly, total: 8_550_000, discount: 450_000, rate: 500, tier: booking.TierSixMonthPlus},
		{name: "one year gets ten percent", count: 1, unit: booking.UnitYearly, total: 1_350_000, discount: 150_000, rate: 1_000, tier: booking.TierAnnualPlus},
		{name: "three months has no discount", count: 3, unit: booking.UnitMonthly, total: 4_500_000, rate: 0, tier: booking.TierNone},
		{name: "five months has no discount", count: 5, unit: booking.UnitMonthly, total: 7_500_000, rate: 0, tier: booking.TierNone},
		{name: "twelve months stays on monthly tier", count: 12, unit: booking.UnitMonthly, total: 17_100_000, discount: 900_000, rate: 500, tier: booking.TierSixMonthPlus},
		{name: "days never discount", count: 400, unit: booking.UnitDaily, total: 600_000_000, rate: 0, tier: booking.TierNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := engine.Quote(base, c.count, c.unit)
			require.NoError(t, err)

			assert.Equal(t, c.total, q.Total.Amount())
			assert.Equal(t, c.discount, q.Discount.Amount())
			assert.Equal(t, c.rate, q.DiscountRate)
			assert.Equal(t, c.tier, q.Tier)
			assert.Equal(t, q.Subtotal.Amount(), q.Total.Amount()+q.Discount.Amount())
		})
	}

	t.Run("rounds half up", func(t *testing.T) {
		// 6 * 333 = 1998, 95% = 1898.1
		q, err := engine.Quote(money.Must(333), 6, booking.UnitMonthly)
		require.NoError(t, err)
		assert.Equal(t, int64(1898), q.Total.Amount())

		// 9 * 95% = 8.55
		q, err = engine.Quote(money.Must(1), 9, booking.UnitMonthly)
		require.NoError(t, err)
		assert.Equal(t, int64(9), q.Total.Amount())
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := engine.Quote(base, 0, booking.UnitMonthly)
		assert.ErrorIs(t, err, booking.ErrInvalidDuration)
	})

	t.Run("invalid unit", func(t *testing.T) {
		_, err := engine.Quote(base, 1, booking.DurationUnit("weekly"))
		assert.ErrorIs(t, err, booking.ErrInvalidDurationUnit)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := engine.Quote(money.Must(math.MaxInt64/2), 3, booking.UnitDaily)
		assert.ErrorIs(t, err, booking.ErrAmountOverflow)
	})
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, booking.TierAnnualPlus, booking.TierFor(2, booking.UnitYearly))
	assert.Equal(t, booking.TierSixMonthPlus, booking.TierFor(6, booking.UnitMonthly))
	assert.Equal(t, booking.TierNone, booking.TierFor(180, booking.UnitDaily))
	assert.Equal(t, int64(10), booking.TierAnnualPlus.Rate()/100)
}
