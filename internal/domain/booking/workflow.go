package booking

import (
	"time"

	"kost-booking/internal/domain/shared/money"
	"kost-booking/internal/pkg/validator"
)

// transitions lists every legal step change.
var transitions = map[Step][]Step{
	StepDetails:    {StepPayment},
	StepPayment:    {StepDetails, StepProcessing},
	StepProcessing: {StepConfirmed, StepFailed},
	StepFailed:     {StepPayment},
	StepConfirmed:  {},
}

func CanTransition(from, to Step) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (d *Draft) moveTo(to Step) error {
	if !CanTransition(d.step, to) {
		return ErrIllegalTransition
	}
	d.step = to
	return nil
}

// Availability reports which navigation actions the current state allows.
type Availability struct {
	CanContinue bool
	CanGoBack   bool
	CanSubmit   bool
	CanRetry    bool
}

// SettlementRequest describes the payment an attempt must settle. SettledReference is set when the
// payment already went through on an earlier attempt and only the record still has to be stored.
type SettlementRequest struct {
	Attempt          int
	Amount           money.Money
	MethodID         string
	SettledReference string
}

func (r SettlementRequest) AlreadySettled() bool {
	return r.SettledReference != ""
}

// ContinueToPayment leaves Details only when validation passes. Otherwise the draft stays put
// and the field errors are kept on the draft and returned.
func (d *Draft) ContinueToPayment() ([]validator.FieldError, error) {
	if d.step != StepDetails {
		return nil, ErrIllegalTransition
	}
	if fieldErrs := d.Validate(); len(fieldErrs) > 0 {
		d.errors = fieldErrs
		return fieldErrs, nil
	}
	d.errors = nil
	return nil, d.moveTo(StepPayment)
}

// BackToDetails is refused once the payment is settled, since the paid amount can no longer change.
func (d *Draft) BackToDetails() error {
	if d.step != StepPayment || d.Settled() {
		return ErrIllegalTransition
	}
	return d.moveTo(StepDetails)
}

// SelectPaymentMethod reports false when id is not in the catalog or the payment is already
// settled; the previous selection stays.
func (d *Draft) SelectPaymentMethod(id string) (bool, error) {
	if d.step != StepPayment {
		return false, ErrDraftLocked
	}
	if d.Settled() {
		return false, nil
	}
	return d.selector.Select(id), nil
}

func (d *Draft) canSubmit() bool {
	if d.step != StepPayment || !d.selector.HasSelection() {
		return false
	}
	_, err := d.Quote()
	return err == nil
}

// Submit opens a new settlement attempt. It is a no-op outside Payment or without a valid method,
// which also absorbs repeated submits while an attempt is in flight.
func (d *Draft) Submit() (SettlementRequest, bool) {
	if !d.canSubmit() {
		return SettlementRequest{}, false
	}
	quote, _ := d.Quote()
	method, _ := d.selector.Selected()

	d.step = StepProcessing
	d.attempt++
	d.failure = nil
	return SettlementRequest{
		Attempt:          d.attempt,
		Amount:           quote.Total,
		MethodID:         method.ID,
		SettledReference: d.settledRef,
	}, true
}

// Settled reports whether a payment for this draft has gone through without a stored record.
func (d *Draft) Settled() bool {
	return d.settledRef != ""
}

// InFlight reports whether attempt is the one currently awaiting its outcome.
func (d *Draft) InFlight(attempt int) bool {
	return d.step == StepProcessing && attempt == d.attempt
}

// Finalize builds the confirmed record for a settled attempt.
func (d *Draft) Finalize(attempt int, settlementRef string, now time.Time) (*Record, error) {
	if !d.InFlight(attempt) {
		return nil, ErrIllegalTransition
	}
	quote, err := d.Quote()
	if err != nil {
		return nil, err
	}
	end, err := d.EndDate()
	if err != nil {
		return nil, err
	}
	method, _ := d.selector.Selected()

	return NewConfirmedRecord(Submission{
		PropertyID:          d.property.ID(),
		TenantID:            d.tenantID,
		CheckIn:             d.checkIn,
		EndDate:             end,
		Duration:            d.duration,
		Unit:                d.unit,
		Quote:               quote,
		PaymentMethodID:     method.ID,
		SettlementReference: settlementRef,
		Contact:             d.contact,
		Note:                d.note,
	}, now), nil
}

// Confirm ends attempt successfully. Stale attempts are ignored and report false.
func (d *Draft) Confirm(attempt int, rec *Record) bool {
	if !d.InFlight(attempt) || rec == nil {
		return false
	}
	d.step = StepConfirmed
	d.record = rec
	return true
}

// Fail ends attempt with f. Stale attempts are ignored and report false.
func (d *Draft) Fail(attempt int, f Failure) bool {
	if !d.InFlight(attempt) {
		return false
	}
	d.step = StepFailed
	d.failure = &f
	return true
}

// FailSubmission ends attempt after the payment settled under ref but the record was not stored.
// The reference is kept so the next submit stores the record without charging again.
func (d *Draft) FailSubmission(attempt int, ref string, f Failure) bool {
	if !d.Fail(attempt, f) {
		return false
	}
	d.settledRef = ref
	return true
}

// Retry is the only way out of Failed and returns to Payment with the previous selection.
func (d *Draft) Retry() error {
	if d.step != StepFailed {
		return ErrIllegalTransition
	}
	d.failure = nil
	return d.moveTo(StepPayment)
}

func (d *Draft) Availability() Availability {
	return Availability{
		CanContinue: d.step == StepDetails && len(d.Validate()) == 0,
		CanGoBack:   d.step == StepPayment && !d.Settled(),
		CanSubmit:   d.canSubmit(),
		CanRetry:    d.step == StepFailed,
	}
}
