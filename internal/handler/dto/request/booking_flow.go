package request

import (
	"time"

	"kost-booking/internal/domain/booking"

	"github.com/google/uuid"
)

const DateLayout = time.DateOnly

type OpenFlowRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
}

// UpdateDetailsRequest is a partial update; omitted fields keep their current value.
// Contact fields are validated by the flow on continue, not here.
type UpdateDetailsRequest struct {
	CheckInDate  *string `json:"checkInDate" binding:"omitempty,datetime=2006-01-02"`
	Duration     *int    `json:"duration"`
	DurationUnit *string `json:"durationUnit" binding:"omitempty,oneof=daily monthly yearly"`
	FullName     *string `json:"fullName" binding:"omitempty,max=255"`
	Email        *string `json:"email" binding:"omitempty,max=255"`
	PhoneNumber  *string `json:"phoneNumber" binding:"omitempty,max=20"`
	Note         *string `json:"note" binding:"omitempty,max=1000"`
}

func (r *UpdateDetailsRequest) ToPatch() (booking.DetailsPatch, error) {
	p := booking.DetailsPatch{
		Duration:    r.Duration,
		FullName:    r.FullName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Note:        r.Note,
	}
	if r.CheckInDate != nil {
		t, err := time.Parse(DateLayout, *r.CheckInDate)
		if err != nil {
			return booking.DetailsPatch{}, err
		}
		p.CheckInDate = &t
	}
	if r.DurationUnit != nil {
		u, err := booking.ParseDurationUnit(*r.DurationUnit)
		if err != nil {
			return booking.DetailsPatch{}, err
		}
		p.DurationUnit = &u
	}
	return p, nil
}

type SelectPaymentMethodRequest struct {
	MethodID string `json:"methodId" binding:"required"`
}
