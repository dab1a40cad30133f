package booking

import (
	"fmt"
	"time"

	"kost-booking/internal/domain/payment"
	"kost-booking/internal/domain/shared/money"
)

type BasePriceLine struct {
	UnitPrice money.Money
	Count     int
	Unit      DurationUnit
	Subtotal  money.Money
	Text      string
}

type DiscountLine struct {
	Tier        DiscountTier
	RatePercent int64
	Amount      money.Money
	Text        string
}

// Summary is the single priced view of a draft. Every displayed price comes from here.
type Summary struct {
	PropertyTitle   string
	PropertyAddress string
	PropertyCity    string
	CheckIn         time.Time
	EndDate         time.Time
	DurationLabel   string
	BasePrice       BasePriceLine
	Discount        *DiscountLine
	Total           money.Money
	TotalText       string
	PaymentMethod   *payment.Method
}

type Projector struct{}

func NewProjector() *Projector {
	return &Projector{}
}

func (p *Projector) Project(d *Draft) (Summary, error) {
	end, err := d.EndDate()
	if err != nil {
		return Summary{}, err
	}
	quote, err := d.Quote()
	if err != nil {
		return Summary{}, err
	}

	prop := d.Property()
	label := d.Unit().Label(d.Duration())
	s := Summary{
		PropertyTitle:   prop.Title(),
		PropertyAddress: prop.Address(),
		PropertyCity:    prop.City(),
		CheckIn:         d.CheckIn(),
		EndDate:         end,
		DurationLabel:   label,
		BasePrice: BasePriceLine{
			UnitPrice: prop.Price(),
			Count:     d.Duration(),
			Unit:      d.Unit(),
			Subtotal:  quote.Subtotal,
			Text:      fmt.Sprintf("%s x %s", prop.Price().Format(), label),
		},
		Total:     quote.Total,
		TotalText: quote.Total.Format(),
	}
	if quote.DiscountRate > 0 {
		s.Discount = &DiscountLine{
			Tier:        quote.Tier,
			RatePercent: quote.RatePercent(),
			Amount:      quote.Discount,
			Text:        fmt.Sprintf("Discount (%d%%) -%s", quote.RatePercent(), quote.Discount.Format()),
		}
	}
	if m, ok := d.SelectedMethod(); ok {
		s.PaymentMethod = &m
	}
	return s, nil
}
