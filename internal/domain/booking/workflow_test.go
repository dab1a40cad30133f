//go:build unit

package booking_test

import (
	"testing"
	"time"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/domain/payment"
	"kost-booking/internal/domain/property"
	"kost-booking/internal/domain/shared/money"
	"kost-booking/internal/domain/user"
	"kost-booking/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*60*60)

type fixture struct {
	clock   *clock.MockClock
	factory *booking.Factory
	prop    *property.Property
	tenant  user.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, jakarta))
	prop, err := property.NewProperty(uuid.New(), "Kost Putri Harmoni", "Jl. Harmoni No. 123", "Jakarta Pusat", 1_500_000, "monthly", true)
	require.NoError(t, err)

	return &fixture{
		clock:   clk,
		factory: booking.NewFactory(clk, booking.NewPricingEngine(), payment.DefaultCatalog(), jakarta),
		prop:    prop,
		tenant: user.Identity{
			ID:       uuid.New(),
			Role:     user.RoleTenant,
			Email:    "budi@example.com",
			FullName: "Budi Santoso",
		},
	}
}

func (f *fixture) open(t *testing.T) *booking.Draft {
	t.Helper()
	d, err := f.factory.Open(f.tenant, f.prop)
	require.NoError(t, err)
	return d
}

// toPayment fills the missing phone number and continues.
func (f *fixture) toPayment(t *testing.T) *booking.Draft {
	t.Helper()
	d := f.open(t)
	require.NoError(t, d.UpdateDetails(booking.DetailsPatch{PhoneNumber: ptr("081234567890")}))
	fieldErrs, err := d.ContinueToPayment()
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Equal(t, booking.StepPayment, d.Step())
	return d
}

func ptr[T any](v T) *T { return &v }

func TestFactory_Open(t *testing.T) {
	f := newFixture(t)

	t.Run("defaults", func(t *testing.T) {
		d := f.open(t)

		assert.Equal(t, booking.StepDetails, d.Step())
		assert.Equal(t, date(2025, 6, 2), d.CheckIn())
		assert.Equal(t, 1, d.Duration())
		assert.Equal(t, booking.UnitMonthly, d.Unit())
		assert.Equal(t, "Budi Santoso", d.Contact().FullName)
		assert.Equal(t, "budi@example.com", d.Contact().Email)
		assert.Equal(t, f.tenant.ID, d.TenantID())
		assert.Zero(t, d.Attempt())
	})

	t.Run("unit follows rental period", func(t *testing.T) {
		daily, err := property.NewProperty(uuid.New(), "Kost Harian", "", "", 150_000, "daily", true)
		require.NoError(t, err)
		d, err := f.factory.Open(f.tenant, daily)
		require.NoError(t, err)
		assert.Equal(t, booking.UnitDaily, d.Unit())
	})

	t.Run("unavailable property", func(t *testing.T) {
		full, err := property.NewProperty(uuid.New(), "Kost Penuh", "", "", 1_000_000, "monthly", false)
		require.NoError(t, err)
		_, err = f.factory.Open(f.tenant, full)
		assert.ErrorIs(t, err, booking.ErrPropertyUnavailable)
	})

	t.Run("owners cannot book", func(t *testing.T) {
		owner := f.tenant
		owner.Role = user.RoleOwner
		_, err := f.factory.Open(owner, f.prop)
		assert.ErrorIs(t, err, booking.ErrNotBookable)
	})
}

func TestDraft_UpdateDetails(t *testing.T) {
	f := newFixture(t)

	t.Run("applies every field", func(t *testing.T) {
		d := f.open(t)
		err := d.UpdateDetails(booking.DetailsPatch{
			CheckInDate:  ptr(date(2025, 7, 1)),
			Duration:     ptr(6),
			DurationUnit: ptr(booking.UnitMonthly),
			FullName:     ptr("  Siti Aminah "),
			PhoneNumber:  ptr("081234567890"),
			Note:         ptr("arrive in the evening"),
		})
		require.NoError(t, err)

		assert.Equal(t, date(2025, 7, 1), d.CheckIn())
		assert.Equal(t, 6, d.Duration())
		assert.Equal(t, "Siti Aminah", d.Contact().FullName)
		assert.Equal(t, "budi@example.com", d.Contact().Email)
		assert.Equal(t, "arrive in the evening", d.Note())

		end, err := d.EndDate()
		require.NoError(t, err)
		assert.Equal(t, date(2026, 1, 1), end)

		q, err := d.Quote()
		require.NoError(t, err)
		assert.Equal(t, int64(8_550_000), q.Total.Amount())
	})

	t.Run("non-positive duration is rejected and nothing is stored", func(t *testing.T) {
		d := f.open(t)
		for _, n := range []int{0, -3} {
			err := d.UpdateDetails(booking.DetailsPatch{Duration: ptr(n), FullName: ptr("Someone Else")})
			assert.ErrorIs(t, err, booking.ErrInvalidDuration)
		}
		assert.Equal(t, 1, d.Duration())
		assert.Equal(t, "Budi Santoso", d.Contact().FullName)
	})

	t.Run("past check-in is rejected", func(t *testing.T) {
		d := f.open(t)
		err := d.UpdateDetails(booking.DetailsPatch{CheckInDate: ptr(date(2025, 5, 31))})
		assert.ErrorIs(t, err, booking.ErrCheckInInPast)
		assert.Equal(t, date(2025, 6, 2), d.CheckIn())
	})

	t.Run("today is allowed", func(t *testing.T) {
		d := f.open(t)
		require.NoError(t, d.UpdateDetails(booking.DetailsPatch{CheckInDate: ptr(date(2025, 6, 1))}))
	})

	t.Run("unknown unit", func(t *testing.T) {
		d := f.open(t)
		err := d.UpdateDetails(booking.DetailsPatch{DurationUnit: ptr(booking.DurationUnit("weekly"))})
		assert.ErrorIs(t, err, booking.ErrInvalidDurationUnit)
	})

	t.Run("moving only the check-in recomputes the end date", func(t *testing.T) {
		d := f.open(t)
		require.NoError(t, d.UpdateDetails(booking.DetailsPatch{CheckInDate: ptr(date(2026, 1, 31))}))

		end, err := d.EndDate()
		require.NoError(t, err)
		assert.Equal(t, date(2026, 2, 28), end)
	})

	t.Run("locked outside details", func(t *testing.T) {
		d := f.toPayment(t)
		err := d.UpdateDetails(booking.DetailsPatch{Duration: ptr(2)})
		assert.ErrorIs(t, err, booking.ErrDraftLocked)
		assert.Equal(t, 1, d.Duration())
	})
}

func TestDraft_ContinueToPayment(t *testing.T) {
	f := newFixture(t)

	t.Run("invalid input stays in details", func(t *testing.T) {
		d := f.open(t)
		require.NoError(t, d.UpdateDetails(booking.DetailsPatch{Email: ptr("not-an-email")}))

		fieldErrs, err := d.ContinueToPayment()
		require.NoError(t, err)
		assert.Equal(t, booking.StepDetails, d.Step())

		fields := map[string]string{}
		for _, fe := range fieldErrs {
			fields[fe.Field] = fe.Code
		}
		assert.Equal(t, map[string]string{"email": "email", "phoneNumber": "required"}, fields)
		assert.Equal(t, fieldErrs, d.Errors())
	})

	t.Run("check-in that became past blocks continue", func(t *testing.T) {
		d := f.open(t)
		require.NoError(t, d.UpdateDetails(booking.DetailsPatch{PhoneNumber: ptr("081234567890")}))
		f.clock.Add(72 * time.Hour)
		defer f.clock.Add(-72 * time.Hour)

		fieldErrs, err := d.ContinueToPayment()
		require.NoError(t, err)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "checkInDate", fieldErrs[0].Field)
		assert.Equal(t, booking.StepDetails, d.Step())
	})

	t.Run("note too long", func(t *testing.T) {
		d := f.open(t)
		long := make([]rune, booking.MaxNoteLength+1)
		for i := range long {
			long[i] = 'a'
		}
		require.NoError(t, d.UpdateDetails(booking.DetailsPatch{PhoneNumber: ptr("081234567890"), Note: ptr(string(long))}))

		fieldErrs, err := d.ContinueToPayment()
		require.NoError(t, err)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "note", fieldErrs[0].Field)
	})

	t.Run("valid input moves to payment and clears errors", func(t *testing.T) {
		d := f.toPayment(t)
		assert.Empty(t, d.Errors())
	})

	t.Run("only from details", func(t *testing.T) {
		d := f.toPayment(t)
		_, err := d.ContinueToPayment()
		assert.ErrorIs(t, err, booking.ErrIllegalTransition)
	})
}

func TestDraft_BackToDetails(t *testing.T) {
	f := newFixture(t)

	d := f.toPayment(t)
	ok, err := d.SelectPaymentMethod("gopay")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, d.BackToDetails())
	assert.Equal(t, booking.StepDetails, d.Step())
	assert.Equal(t, "081234567890", d.Contact().PhoneNumber)
	m, ok := d.SelectedMethod()
	require.True(t, ok)
	assert.Equal(t, "gopay", m.ID)

	assert.ErrorIs(t, d.BackToDetails(), booking.ErrIllegalTransition)
}

func TestDraft_Submit(t *testing.T) {
	f := newFixture(t)

	t.Run("without method never enters processing", func(t *testing.T) {
		d := f.toPayment(t)
		_, started := d.Submit()
		assert.False(t, started)
		assert.Equal(t, booking.StepPayment, d.Step())
		assert.False(t, d.Availability().CanSubmit)
	})

	t.Run("unknown method leaves selection unchanged", func(t *testing.T) {
		d := f.toPayment(t)
		ok, err := d.SelectPaymentMethod("bca")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = d.SelectPaymentMethod("paypal")
		require.NoError(t, err)
		assert.False(t, ok)

		m, _ := d.SelectedMethod()
		assert.Equal(t, "bca", m.ID)
	})

	t.Run("selection only in payment", func(t *testing.T) {
		d := f.open(t)
		_, err := d.SelectPaymentMethod("bca")
		assert.ErrorIs(t, err, booking.ErrDraftLocked)
	})

	t.Run("repeated submit does not re-enter processing", func(t *testing.T) {
		d := f.toPayment(t)
		_, _ = d.SelectPaymentMethod("qris")

		req, started := d.Submit()
		require.True(t, started)
		assert.Equal(t, 1, req.Attempt)
		assert.Equal(t, "qris", req.MethodID)
		assert.Equal(t, money.Must(1_500_000), req.Amount)
		assert.Equal(t, booking.StepProcessing, d.Step())

		_, started = d.Submit()
		assert.False(t, started)
		assert.Equal(t, 1, d.Attempt())

		assert.ErrorIs(t, d.BackToDetails(), booking.ErrIllegalTransition)
		assert.ErrorIs(t, d.Retry(), booking.ErrIllegalTransition)
	})
}

func TestDraft_SettlementOutcomes(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

	t.Run("failure then retry then confirm", func(t *testing.T) {
		d := f.toPayment(t)
		_, _ = d.SelectPaymentMethod("dana")

		first, started := d.Submit()
		require.True(t, started)
		require.True(t, d.Fail(first.Attempt, booking.Failure{Kind: booking.FailureTimeout, Reason: "no response"}))
		assert.Equal(t, booking.StepFailed, d.Step())
		require.NotNil(t, d.Failure())
		assert.Equal(t, booking.FailureTimeout, d.Failure().Kind)

		_, started = d.Submit()
		assert.False(t, started, "failed never resubmits on its own")

		require.NoError(t, d.Retry())
		assert.Equal(t, booking.StepPayment, d.Step())
		assert.Nil(t, d.Failure())
		m, ok := d.SelectedMethod()
		require.True(t, ok)
		assert.Equal(t, "dana", m.ID)

		second, started := d.Submit()
		require.True(t, started)
		assert.Equal(t, 2, second.Attempt)

		stale, err := d.Finalize(first.Attempt, "ref-old", now)
		assert.ErrorIs(t, err, booking.ErrIllegalTransition)
		assert.Nil(t, stale)
		assert.False(t, d.Fail(first.Attempt, booking.Failure{Kind: booking.FailureDeclined}))
		assert.Equal(t, booking.StepProcessing, d.Step())

		rec, err := d.Finalize(second.Attempt, "ref-2", now)
		require.NoError(t, err)
		assert.False(t, d.Confirm(first.Attempt, rec))
		require.True(t, d.Confirm(second.Attempt, rec))

		assert.Equal(t, booking.StepConfirmed, d.Step())
		assert.Equal(t, rec, d.Record())
		assert.Equal(t, booking.StatusConfirmed, rec.Status())
		assert.Equal(t, booking.PaymentPaid, rec.PaymentStatus())
		assert.Equal(t, "dana", rec.PaymentMethodID())
		assert.Equal(t, "ref-2", rec.SettlementReference())
		assert.Equal(t, f.prop.ID(), rec.PropertyID())
		assert.Equal(t, date(2025, 7, 2), rec.EndDate())
		assert.Equal(t, now, rec.CreatedAt())

		assert.False(t, d.Fail(second.Attempt, booking.Failure{Kind: booking.FailureDeclined}), "confirmed is final")
		assert.Equal(t, booking.StepConfirmed, d.Step())
	})

	t.Run("settled payment whose record was not stored is never charged again", func(t *testing.T) {
		d := f.toPayment(t)
		_, _ = d.SelectPaymentMethod("bca")

		first, started := d.Submit()
		require.True(t, started)
		assert.False(t, first.AlreadySettled())

		failure := booking.Failure{Kind: booking.FailureSubmissionError, Reason: "booking could not be saved"}
		require.True(t, d.FailSubmission(first.Attempt, "STL-1", failure))
		assert.True(t, d.Settled())
		assert.Equal(t, booking.StepFailed, d.Step())

		require.NoError(t, d.Retry())
		assert.False(t, d.Availability().CanGoBack)
		assert.ErrorIs(t, d.BackToDetails(), booking.ErrIllegalTransition)

		changed, err := d.SelectPaymentMethod("gopay")
		require.NoError(t, err)
		assert.False(t, changed)

		second, started := d.Submit()
		require.True(t, started)
		assert.True(t, second.AlreadySettled())
		assert.Equal(t, "STL-1", second.SettledReference)
		assert.Equal(t, "bca", second.MethodID)
		assert.Equal(t, first.Amount, second.Amount)
	})

	t.Run("stale submission failure keeps no reference", func(t *testing.T) {
		d := f.toPayment(t)
		_, _ = d.SelectPaymentMethod("bca")
		req, _ := d.Submit()

		assert.False(t, d.FailSubmission(req.Attempt+1, "STL-2", booking.Failure{Kind: booking.FailureSubmissionError}))
		assert.False(t, d.Settled())
		assert.Equal(t, booking.StepProcessing, d.Step())
	})
}

func TestDraft_Availability(t *testing.T) {
	f := newFixture(t)

	d := f.open(t)
	assert.Equal(t, booking.Availability{}, d.Availability(), "phone missing")

	require.NoError(t, d.UpdateDetails(booking.DetailsPatch{PhoneNumber: ptr("081234567890")}))
	assert.Equal(t, booking.Availability{CanContinue: true}, d.Availability())

	_, _ = d.ContinueToPayment()
	assert.Equal(t, booking.Availability{CanGoBack: true}, d.Availability())

	_, _ = d.SelectPaymentMethod("ovo")
	assert.Equal(t, booking.Availability{CanGoBack: true, CanSubmit: true}, d.Availability())

	req, _ := d.Submit()
	assert.Equal(t, booking.Availability{}, d.Availability())

	d.Fail(req.Attempt, booking.Failure{Kind: booking.FailureDeclined})
	assert.Equal(t, booking.Availability{CanRetry: true}, d.Availability())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, booking.CanTransition(booking.StepDetails, booking.StepPayment))
	assert.True(t, booking.CanTransition(booking.StepPayment, booking.StepDetails))
	assert.True(t, booking.CanTransition(booking.StepFailed, booking.StepPayment))
	assert.False(t, booking.CanTransition(booking.StepDetails, booking.StepProcessing))
	assert.False(t, booking.CanTransition(booking.StepProcessing, booking.StepPayment))
	assert.False(t, booking.CanTransition(booking.StepConfirmed, booking.StepDetails))
}

var moneyComparer = cmp.Comparer(func(a, b money.Money) bool { return a.Amount() == b.Amount() })

func TestProjector_Project(t *testing.T) {
	f := newFixture(t)
	projector := booking.NewProjector()

	t.Run("six months with discount", func(t *testing.T) {
		d := f.toPayment(t)
		require.NoError(t, d.BackToDetails())
		require.NoError(t, d.UpdateDetails(booking.DetailsPatch{Duration: ptr(6)}))

		s, err := projector.Project(d)
		require.NoError(t, err)

		want := booking.Summary{
			PropertyTitle:   "Kost Putri Harmoni",
			PropertyAddress: "Jl. Harmoni No. 123",
			PropertyCity:    "Jakarta Pusat",
			CheckIn:         date(2025, 6, 2),
			EndDate:         date(2025, 12, 2),
			DurationLabel:   "6 months",
			BasePrice: booking.BasePriceLine{
				UnitPrice: money.Must(1_500_000),
				Count:     6,
				Unit:      booking.UnitMonthly,
				Subtotal:  money.Must(9_000_000),
				Text:      "Rp 1.500.000 x 6 months",
			},
			Discount: &booking.DiscountLine{
				Tier:        booking.TierSixMonthPlus,
				RatePercent: 5,
				Amount:      money.Must(450_000),
				Text:        "Discount (5%) -Rp 450.000",
			},
			Total:     money.Must(8_550_000),
			TotalText: "Rp 8.550.000",
		}
		if diff := cmp.Diff(want, s, moneyComparer); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no discount line without a discount", func(t *testing.T) {
		d := f.open(t)
		s, err := projector.Project(d)
		require.NoError(t, err)
		assert.Nil(t, s.Discount)
		assert.Equal(t, "1 month", s.DurationLabel)
		assert.Equal(t, "Rp 1.500.000", s.TotalText)
	})

	t.Run("total matches quote and record", func(t *testing.T) {
		d := f.toPayment(t)
		_, _ = d.SelectPaymentMethod("bca")
		req, _ := d.Submit()

		s, err := projector.Project(d)
		require.NoError(t, err)
		require.NotNil(t, s.PaymentMethod)
		assert.Equal(t, "bca", s.PaymentMethod.ID)
		assert.Equal(t, req.Amount, s.Total)

		rec, err := d.Finalize(req.Attempt, "ref", time.Now())
		require.NoError(t, err)
		assert.Equal(t, s.Total, rec.TotalPrice())
	})
}
