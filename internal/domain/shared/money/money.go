package money

import (
	"errors"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrNegativeAmount = errors.New("money cannot be negative")
	ErrOverflow       = errors.New("money amount overflows")
)

// BasisPointsScale is 100%.
const BasisPointsScale = 10_000

var printer = message.NewPrinter(language.Indonesian)

// Money is an IDR amount held in whole rupiah, the smallest unit used for kost prices.
type Money struct {
	amount int64
}

func New(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

// Must panics on negative amounts; for constants and tests.
func Must(amount int64) Money {
	m, err := New(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero() Money { return Money{} }

func (m Money) Amount() int64 { return m.amount }

func (m Money) IsZero() bool { return m.amount == 0 }

func (m Money) Add(other Money) (Money, error) {
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, ErrOverflow
	}
	return Money{amount: m.amount + other.amount}, nil
}

// Sub floors at zero.
func (m Money) Sub(other Money) Money {
	if other.amount >= m.amount {
		return Money{}
	}
	return Money{amount: m.amount - other.amount}
}

func (m Money) Times(n int64) (Money, error) {
	if n < 0 {
		return Money{}, ErrNegativeAmount
	}
	if n != 0 && m.amount > math.MaxInt64/n {
		return Money{}, ErrOverflow
	}
	return Money{amount: m.amount * n}, nil
}

// ScaleBasisPoints returns m*bps/10000 rounded half up, without overflowing on the intermediate product.
func (m Money) ScaleBasisPoints(bps int64) (Money, error) {
	if bps < 0 {
		return Money{}, ErrNegativeAmount
	}
	whole := m.amount / BasisPointsScale
	rest := m.amount % BasisPointsScale
	if bps != 0 && whole > math.MaxInt64/bps {
		return Money{}, ErrOverflow
	}
	head := whole * bps
	tail := (rest*bps + BasisPointsScale/2) / BasisPointsScale
	if head > math.MaxInt64-tail {
		return Money{}, ErrOverflow
	}
	return Money{amount: head + tail}, nil
}

// Format renders the display form, e.g. "Rp 1.500.000".
func (m Money) Format() string {
	return printer.Sprintf("Rp %d", m.amount)
}

func (m Money) String() string {
	return m.Format()
}
