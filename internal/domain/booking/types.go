package booking

import (
	"errors"
	"fmt"
	"strings"

	"kost-booking/internal/domain/property"
)

var (
	ErrInvalidDuration     = errors.New("duration must be at least 1")
	ErrInvalidDurationUnit = errors.New("invalid duration unit")
	ErrCheckInInPast       = errors.New("check-in date cannot be in the past")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrAmountOverflow      = errors.New("amount overflows")
	ErrDraftLocked         = errors.New("draft cannot be edited in current step")
	ErrIllegalTransition   = errors.New("illegal step transition")
	ErrPropertyUnavailable = errors.New("property is not available for booking")
	ErrNotBookable         = errors.New("caller is not allowed to book")
)

type DurationUnit string

const (
	UnitDaily   DurationUnit = "daily"
	UnitMonthly DurationUnit = "monthly"
	UnitYearly  DurationUnit = "yearly"
)

func ParseDurationUnit(s string) (DurationUnit, error) {
	u := DurationUnit(strings.ToLower(strings.TrimSpace(s)))
	if !u.IsValid() {
		return "", ErrInvalidDurationUnit
	}
	return u, nil
}

// UnitFromRentalPeriod maps a property's rental period onto the matching duration unit.
func UnitFromRentalPeriod(p property.RentalPeriod) DurationUnit {
	switch p {
	case property.RentalDaily:
		return UnitDaily
	case property.RentalYearly:
		return UnitYearly
	default:
		return UnitMonthly
	}
}

func (u DurationUnit) IsValid() bool {
	switch u {
	case UnitDaily, UnitMonthly, UnitYearly:
		return true
	default:
		return false
	}
}

func (u DurationUnit) String() string {
	return string(u)
}

// Noun is the singular unit noun: day, month, year.
func (u DurationUnit) Noun() string {
	switch u {
	case UnitDaily:
		return "day"
	case UnitMonthly:
		return "month"
	case UnitYearly:
		return "year"
	default:
		return string(u)
	}
}

// Label renders "1 month", "2 months", "3 days".
func (u DurationUnit) Label(count int) string {
	noun := u.Noun()
	if count != 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s", count, noun)
}

type Step string

const (
	StepDetails    Step = "details"
	StepPayment    Step = "payment"
	StepProcessing Step = "processing"
	StepConfirmed  Step = "confirmed"
	StepFailed     Step = "failed"
)

func (s Step) String() string {
	return string(s)
}

// Number is the progress indicator position. Failed shares Processing's slot.
func (s Step) Number() int {
	switch s {
	case StepDetails:
		return 1
	case StepPayment:
		return 2
	case StepProcessing, StepFailed:
		return 3
	case StepConfirmed:
		return 4
	default:
		return 0
	}
}

type RecordStatus string

const (
	StatusPending   RecordStatus = "pending"
	StatusConfirmed RecordStatus = "confirmed"
	StatusCancelled RecordStatus = "cancelled"
	StatusCompleted RecordStatus = "completed"
)

func (s RecordStatus) String() string {
	return string(s)
}

func (s RecordStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	return s == PaymentUnpaid || s == PaymentPaid
}

type FailureKind string

const (
	FailureDeclined        FailureKind = "declined"
	FailureTimeout         FailureKind = "timeout"
	FailureGatewayError    FailureKind = "gateway_error"
	FailureSubmissionError FailureKind = "submission_error"
)

func (k FailureKind) String() string {
	return string(k)
}

type Failure struct {
	Kind   FailureKind
	Reason string
}
