package booking

import (
	"strings"
	"time"

	"kost-booking/internal/domain/payment"
	"kost-booking/internal/domain/property"
	"kost-booking/internal/pkg/clock"
	"kost-booking/internal/pkg/patch"
	"kost-booking/internal/pkg/validator"

	"github.com/google/uuid"
)

const MaxNoteLength = 1000

type Contact struct {
	FullName    string `json:"fullName" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=8,max=20"`
}

type noteForm struct {
	Note string `json:"note" validate:"max=1000"`
}

// DetailsPatch carries a partial update of the first step's inputs. Nil fields are left as they are.
type DetailsPatch struct {
	CheckInDate  *time.Time
	Duration     *int
	DurationUnit *DurationUnit
	FullName     *string
	Email        *string
	PhoneNumber  *string
	Note         *string
}

// Draft is a tenant's in-progress booking. Its end date and price are derived on every read.
type Draft struct {
	id       uuid.UUID
	tenantID uuid.UUID
	property *property.Property
	checkIn  time.Time
	duration int
	unit     DurationUnit
	contact  Contact
	note     string
	selector *payment.Selector
	step     Step
	attempt  int
	// reference of a settled payment whose record is not stored yet
	settledRef string
	failure    *Failure
	record     *Record
	errors     []validator.FieldError
	services   *Factory
}

func (d *Draft) ID() uuid.UUID                  { return d.id }
func (d *Draft) TenantID() uuid.UUID            { return d.tenantID }
func (d *Draft) Property() *property.Property   { return d.property }
func (d *Draft) CheckIn() time.Time             { return d.checkIn }
func (d *Draft) Duration() int                  { return d.duration }
func (d *Draft) Unit() DurationUnit             { return d.unit }
func (d *Draft) Contact() Contact               { return d.contact }
func (d *Draft) Note() string                   { return d.note }
func (d *Draft) Step() Step                     { return d.step }
func (d *Draft) Attempt() int                   { return d.attempt }
func (d *Draft) Failure() *Failure              { return d.failure }
func (d *Draft) Record() *Record                { return d.record }
func (d *Draft) Errors() []validator.FieldError { return d.errors }

func (d *Draft) SelectedMethod() (payment.Method, bool) {
	return d.selector.Selected()
}

func (d *Draft) EndDate() (time.Time, error) {
	return EndDate(d.checkIn, d.duration, d.unit)
}

func (d *Draft) Quote() (Quote, error) {
	return d.services.Pricing.Quote(d.property.Price(), d.duration, d.unit)
}

func (d *Draft) today() time.Time {
	return clock.Today(d.services.Clock, d.services.Location)
}

// UpdateDetails applies p atomically: either every field is taken or none is.
func (d *Draft) UpdateDetails(p DetailsPatch) error {
	if d.step != StepDetails {
		return ErrDraftLocked
	}

	checkIn := d.checkIn
	if p.CheckInDate != nil {
		checkIn = CivilDate(*p.CheckInDate)
		if checkIn.Before(d.today()) {
			return ErrCheckInInPast
		}
	}
	duration := patch.Coalesce(p.Duration, d.duration)
	if duration <= 0 {
		return ErrInvalidDuration
	}
	unit := patch.Coalesce(p.DurationUnit, d.unit)
	if !unit.IsValid() {
		return ErrInvalidDurationUnit
	}
	if patch.Changed(p.Duration, d.duration) || patch.Changed(p.DurationUnit, d.unit) {
		if _, err := d.services.Pricing.Quote(d.property.Price(), duration, unit); err != nil {
			return err
		}
	}
	if _, err := EndDate(checkIn, duration, unit); err != nil {
		return err
	}

	d.checkIn = checkIn
	d.duration = duration
	d.unit = unit
	d.contact = Contact{
		FullName:    strings.TrimSpace(patch.Coalesce(p.FullName, d.contact.FullName)),
		Email:       strings.TrimSpace(patch.Coalesce(p.Email, d.contact.Email)),
		PhoneNumber: strings.TrimSpace(patch.Coalesce(p.PhoneNumber, d.contact.PhoneNumber)),
	}
	d.note = patch.Coalesce(p.Note, d.note)
	d.errors = nil
	return nil
}

// Validate checks every first-step precondition and returns one entry per failing field.
func (d *Draft) Validate() []validator.FieldError {
	var out []validator.FieldError
	if d.checkIn.Before(d.today()) {
		out = append(out, validator.FieldError{
			Field:   "checkInDate",
			Code:    "past",
			Message: ErrCheckInInPast.Error(),
		})
	}
	if d.duration < 1 {
		out = append(out, validator.FieldError{
			Field:   "duration",
			Code:    "min",
			Message: ErrInvalidDuration.Error(),
		})
	}
	out = append(out, validator.Struct(d.contact)...)
	out = append(out, validator.Struct(noteForm{Note: d.note})...)
	return out
}
