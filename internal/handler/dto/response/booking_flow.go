package response

import (
	"time"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/pkg/validator"
	"kost-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type FlowDetailsResponse struct {
	CheckInDate  string          `json:"checkInDate"`
	Duration     int             `json:"duration"`
	DurationUnit string          `json:"durationUnit"`
	Contact      ContactResponse `json:"contact"`
	Note         string          `json:"note"`
}

type BasePriceResponse struct {
	UnitPrice MoneyResponse `json:"unitPrice"`
	Count     int           `json:"count"`
	Unit      string        `json:"unit"`
	Subtotal  MoneyResponse `json:"subtotal"`
	Text      string        `json:"text"`
}

type DiscountResponse struct {
	Tier        string        `json:"tier"`
	RatePercent int64         `json:"ratePercent"`
	Amount      MoneyResponse `json:"amount"`
	Text        string        `json:"text"`
}

type SummaryResponse struct {
	PropertyTitle   string                 `json:"propertyTitle"`
	PropertyAddress string                 `json:"propertyAddress"`
	PropertyCity    string                 `json:"propertyCity"`
	CheckInDate     string                 `json:"checkInDate"`
	EndDate         string                 `json:"endDate"`
	DurationLabel   string                 `json:"durationLabel"`
	BasePrice       BasePriceResponse      `json:"basePrice"`
	Discount        *DiscountResponse      `json:"discount"`
	Total           MoneyResponse          `json:"total"`
	PaymentMethod   *PaymentMethodResponse `json:"paymentMethod"`
}

type AvailabilityResponse struct {
	CanContinue bool `json:"canContinue"`
	CanGoBack   bool `json:"canGoBack"`
	CanSubmit   bool `json:"canSubmit"`
	CanRetry    bool `json:"canRetry"`
}

type FailureResponse struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

type FlowResponse struct {
	ID                    uuid.UUID              `json:"id"`
	PropertyID            uuid.UUID              `json:"propertyId"`
	Step                  string                 `json:"step"`
	StepNumber            int                    `json:"stepNumber"`
	Details               FlowDetailsResponse    `json:"details"`
	Summary               SummaryResponse        `json:"summary"`
	Errors                []validator.FieldError `json:"errors"`
	Availability          AvailabilityResponse   `json:"availability"`
	SelectedPaymentMethod *string                `json:"selectedPaymentMethod"`
	Failure               *FailureResponse       `json:"failure"`
	Booking               *BookingResponse       `json:"booking"`
}

func FromFlowView(v *queries.FlowView) (*FlowResponse, error) {
	summary, err := fromSummary(v.Summary)
	if err != nil {
		return nil, err
	}

	res := &FlowResponse{
		ID:         v.ID,
		PropertyID: v.PropertyID,
		Step:       v.Step.String(),
		StepNumber: v.StepNumber,
		Details: FlowDetailsResponse{
			CheckInDate:  v.Details.CheckInDate.Format(time.DateOnly),
			Duration:     v.Details.Duration,
			DurationUnit: v.Details.DurationUnit.String(),
			Contact: ContactResponse{
				FullName:    v.Details.Contact.FullName,
				Email:       v.Details.Contact.Email,
				PhoneNumber: v.Details.Contact.PhoneNumber,
			},
			Note: v.Details.Note,
		},
		Summary: summary,
		Errors:  v.Errors,
		Availability: AvailabilityResponse{
			CanContinue: v.Availability.CanContinue,
			CanGoBack:   v.Availability.CanGoBack,
			CanSubmit:   v.Availability.CanSubmit,
			CanRetry:    v.Availability.CanRetry,
		},
	}
	if res.Errors == nil {
		res.Errors = []validator.FieldError{}
	}
	if v.SelectedPaymentMethod != nil {
		id := v.SelectedPaymentMethod.ID
		res.SelectedPaymentMethod = &id
	}
	if v.Failure != nil {
		res.Failure = &FailureResponse{Kind: v.Failure.Kind.String(), Reason: v.Failure.Reason}
	}
	if v.Booking != nil {
		res.Booking = FromBookingView(v.Booking)
	}
	return res, nil
}

func fromSummary(s booking.Summary) (SummaryResponse, error) {
	res := SummaryResponse{
		PropertyTitle:   s.PropertyTitle,
		PropertyAddress: s.PropertyAddress,
		PropertyCity:    s.PropertyCity,
		CheckInDate:     s.CheckIn.Format(time.DateOnly),
		EndDate:         s.EndDate.Format(time.DateOnly),
		DurationLabel:   s.DurationLabel,
		BasePrice: BasePriceResponse{
			UnitPrice: FromMoney(s.BasePrice.UnitPrice),
			Count:     s.BasePrice.Count,
			Unit:      s.BasePrice.Unit.String(),
			Subtotal:  FromMoney(s.BasePrice.Subtotal),
			Text:      s.BasePrice.Text,
		},
		Total: MoneyResponse{Amount: s.Total.Amount(), Text: s.TotalText},
	}
	if d := s.Discount; d != nil {
		res.Discount = &DiscountResponse{
			Tier:        d.Tier.String(),
			RatePercent: d.RatePercent,
			Amount:      FromMoney(d.Amount),
			Text:        d.Text,
		}
	}
	if s.PaymentMethod != nil {
		pm, err := FromPaymentMethod(*s.PaymentMethod)
		if err != nil {
			return SummaryResponse{}, err
		}
		res.PaymentMethod = &pm
	}
	return res, nil
}
