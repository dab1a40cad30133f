package converter

import (
	"math"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/domain/shared/money"
	"kost-booking/internal/infra/pgstore"
	"kost-booking/internal/pkg/errs"
	"kost-booking/internal/pkg/pgconv"
)

var ErrDurationOutOfRange = errs.New("booking duration out of int32 range")

func BookingToInfra(rec *booking.Record) (pgstore.CreateBookingParams, error) {
	d := rec.Duration()
	if d > math.MaxInt32 || d < math.MinInt32 {
		return pgstore.CreateBookingParams{}, errs.Wrapf(ErrDurationOutOfRange, "duration %d", d)
	}

	contact := rec.Contact()
	return pgstore.CreateBookingParams{
		ID:                  rec.ID(),
		PropertyID:          rec.PropertyID(),
		TenantID:            rec.TenantID(),
		CheckInDate:         pgconv.DateToPgtype(rec.CheckIn()),
		EndDate:             pgconv.DateToPgtype(rec.EndDate()),
		Duration:            int32(d),
		DurationUnit:        rec.Unit().String(),
		Status:              rec.Status().String(),
		TotalPrice:          rec.TotalPrice().Amount(),
		DiscountTier:        rec.Tier().String(),
		PaymentStatus:       rec.PaymentStatus().String(),
		PaymentMethodID:     rec.PaymentMethodID(),
		SettlementReference: rec.SettlementReference(),
		ContactName:         contact.FullName,
		ContactEmail:        contact.Email,
		ContactPhone:        contact.PhoneNumber,
		Note:                pgconv.StringToPgtype(rec.Note()),
		CreatedAt:           pgconv.TimeToPgtype(rec.CreatedAt()),
	}, nil
}

// BookingFromInfra rebuilds a record from a stored row. Unknown enum values are rejected.
func BookingFromInfra(row pgstore.Booking) (*booking.Record, error) {
	unit, err := booking.ParseDurationUnit(row.DurationUnit)
	if err != nil {
		return nil, err
	}
	tier := booking.DiscountTier(row.DiscountTier)
	if !tier.IsValid() {
		return nil, errs.Newf("unknown discount tier %q", row.DiscountTier)
	}
	status := booking.RecordStatus(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("unknown booking status %q", row.Status)
	}
	paymentStatus := booking.PaymentStatus(row.PaymentStatus)
	if !paymentStatus.IsValid() {
		return nil, errs.Newf("unknown payment status %q", row.PaymentStatus)
	}
	total, err := money.New(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructRecord(
		row.ID, row.PropertyID, row.TenantID,
		pgconv.DateFromPgtype(row.CheckInDate),
		pgconv.DateFromPgtype(row.EndDate),
		int(row.Duration),
		unit,
		total,
		tier,
		row.PaymentMethodID, row.SettlementReference,
		booking.Contact{
			FullName:    row.ContactName,
			Email:       row.ContactEmail,
			PhoneNumber: row.ContactPhone,
		},
		pgconv.StringFromPgtype(row.Note),
		status,
		paymentStatus,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
