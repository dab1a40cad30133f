package queries

import (
	"context"
	"time"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/domain/payment"
	"kost-booking/internal/domain/user"
	"kost-booking/internal/pkg/clock"
	"kost-booking/internal/pkg/errs"
	"kost-booking/internal/pkg/validator"
	"kost-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=flow.go -destination=../../../tests/mock/queries/flow.go -package=queriesmock

type FlowDetails struct {
	CheckInDate  time.Time
	Duration     int
	DurationUnit booking.DurationUnit
	Contact      booking.Contact
	Note         string
}

// FlowView is one consistent snapshot of a booking flow, taken under the session lock.
type FlowView struct {
	ID                    uuid.UUID
	PropertyID            uuid.UUID
	Step                  booking.Step
	StepNumber            int
	Details               FlowDetails
	Summary               booking.Summary
	Errors                []validator.FieldError
	Availability          booking.Availability
	SelectedPaymentMethod *payment.Method
	Failure               *booking.Failure
	Booking               *BookingView
}

type FlowQueries interface {
	Get(ctx context.Context, actor user.Identity, flowID uuid.UUID) (*FlowView, error)
}

type flowQueriesImpl struct {
	sessions  shared.SessionStore
	projector *booking.Projector
	clock     clock.Clock
}

func NewFlowQueries(sessions shared.SessionStore, projector *booking.Projector, clock clock.Clock) FlowQueries {
	return &flowQueriesImpl{
		sessions:  sessions,
		projector: projector,
		clock:     clock,
	}
}

func (q *flowQueriesImpl) Get(_ context.Context, actor user.Identity, flowID uuid.UUID) (*FlowView, error) {
	s, ok := q.sessions.Get(flowID)
	if !ok || s.TenantID() != actor.ID {
		return nil, errs.ErrFlowNotFound
	}

	var view *FlowView
	err := s.Do(q.clock.Now(), func(d *booking.Draft) error {
		v, err := q.build(d)
		view = v
		return err
	})
	if err != nil {
		if errs.Is(err, shared.ErrSessionClosed) {
			return nil, errs.ErrFlowNotFound
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return view, nil
}

func (q *flowQueriesImpl) build(d *booking.Draft) (*FlowView, error) {
	summary, err := q.projector.Project(d)
	if err != nil {
		return nil, err
	}

	v := &FlowView{
		ID:         d.ID(),
		PropertyID: d.Property().ID(),
		Step:       d.Step(),
		StepNumber: d.Step().Number(),
		Details: FlowDetails{
			CheckInDate:  d.CheckIn(),
			Duration:     d.Duration(),
			DurationUnit: d.Unit(),
			Contact:      d.Contact(),
			Note:         d.Note(),
		},
		Summary:               summary,
		Errors:                d.Errors(),
		Availability:          d.Availability(),
		SelectedPaymentMethod: summary.PaymentMethod,
	}
	if f := d.Failure(); f != nil {
		failure := *f
		v.Failure = &failure
	}
	if rec := d.Record(); rec != nil {
		v.Booking = bookingViewFromRecord(rec, summary)
	}
	return v, nil
}

// bookingViewFromRecord reuses the summary's projection so the confirmed booking shows the same prices.
func bookingViewFromRecord(rec *booking.Record, s booking.Summary) *BookingView {
	b := &BookingView{
		ID:                  rec.ID(),
		PropertyID:          rec.PropertyID(),
		PropertyTitle:       s.PropertyTitle,
		PropertyAddress:     s.PropertyAddress,
		PropertyCity:        s.PropertyCity,
		TenantID:            rec.TenantID(),
		CheckInDate:         rec.CheckIn(),
		EndDate:             rec.EndDate(),
		Duration:            rec.Duration(),
		DurationUnit:        rec.Unit().String(),
		DurationLabel:       s.DurationLabel,
		TotalPrice:          rec.TotalPrice().Amount(),
		TotalPriceText:      s.TotalText,
		DiscountTier:        rec.Tier().String(),
		Status:              rec.Status().String(),
		PaymentStatus:       rec.PaymentStatus().String(),
		PaymentMethodID:     rec.PaymentMethodID(),
		SettlementReference: rec.SettlementReference(),
		ContactName:         rec.Contact().FullName,
		ContactEmail:        rec.Contact().Email,
		ContactPhone:        rec.Contact().PhoneNumber,
		CreatedAt:           rec.CreatedAt(),
	}
	if note := rec.Note(); note != "" {
		b.Note = &note
	}
	return b
}
