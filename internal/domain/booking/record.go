package booking

import (
	"time"

	"kost-booking/internal/domain/shared/money"

	"github.com/google/uuid"
)

// Submission is everything a settled draft hands over to become a record.
type Submission struct {
	PropertyID          uuid.UUID
	TenantID            uuid.UUID
	CheckIn             time.Time
	EndDate             time.Time
	Duration            int
	Unit                DurationUnit
	Quote               Quote
	PaymentMethodID     string
	SettlementReference string
	Contact             Contact
	Note                string
}

// Record is an immutable booking created once payment has settled.
type Record struct {
	id                  uuid.UUID
	propertyID          uuid.UUID
	tenantID            uuid.UUID
	checkIn             time.Time
	endDate             time.Time
	duration            int
	unit                DurationUnit
	totalPrice          money.Money
	tier                DiscountTier
	paymentMethodID     string
	settlementReference string
	contact             Contact
	note                string
	status              RecordStatus
	paymentStatus       PaymentStatus
	createdAt           time.Time
}

func NewConfirmedRecord(s Submission, now time.Time) *Record {
	return &Record{
		id:                  uuid.New(),
		propertyID:          s.PropertyID,
		tenantID:            s.TenantID,
		checkIn:             s.CheckIn,
		endDate:             s.EndDate,
		duration:            s.Duration,
		unit:                s.Unit,
		totalPrice:          s.Quote.Total,
		tier:                s.Quote.Tier,
		paymentMethodID:     s.PaymentMethodID,
		settlementReference: s.SettlementReference,
		contact:             s.Contact,
		note:                s.Note,
		status:              StatusConfirmed,
		paymentStatus:       PaymentPaid,
		createdAt:           now,
	}
}

func ReconstructRecord(
	id, propertyID, tenantID uuid.UUID,
	checkIn, endDate time.Time,
	duration int,
	unit DurationUnit,
	totalPrice money.Money,
	tier DiscountTier,
	paymentMethodID, settlementReference string,
	contact Contact,
	note string,
	status RecordStatus,
	paymentStatus PaymentStatus,
	createdAt time.Time,
) *Record {
	return &Record{
		id:                  id,
		propertyID:          propertyID,
		tenantID:            tenantID,
		checkIn:             checkIn,
		endDate:             endDate,
		duration:            duration,
		unit:                unit,
		totalPrice:          totalPrice,
		tier:                tier,
		paymentMethodID:     paymentMethodID,
		settlementReference: settlementReference,
		contact:             contact,
		note:                note,
		status:              status,
		paymentStatus:       paymentStatus,
		createdAt:           createdAt,
	}
}

func (r *Record) ID() uuid.UUID                { return r.id }
func (r *Record) PropertyID() uuid.UUID        { return r.propertyID }
func (r *Record) TenantID() uuid.UUID          { return r.tenantID }
func (r *Record) CheckIn() time.Time           { return r.checkIn }
func (r *Record) EndDate() time.Time           { return r.endDate }
func (r *Record) Duration() int                { return r.duration }
func (r *Record) Unit() DurationUnit           { return r.unit }
func (r *Record) TotalPrice() money.Money      { return r.totalPrice }
func (r *Record) Tier() DiscountTier           { return r.tier }
func (r *Record) PaymentMethodID() string      { return r.paymentMethodID }
func (r *Record) SettlementReference() string  { return r.settlementReference }
func (r *Record) Contact() Contact             { return r.contact }
func (r *Record) Note() string                 { return r.note }
func (r *Record) Status() RecordStatus         { return r.status }
func (r *Record) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Record) CreatedAt() time.Time         { return r.createdAt }
