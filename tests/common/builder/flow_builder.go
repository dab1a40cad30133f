//go:build unit || e2e

package builder

import (
	"context"
	"testing"
	"time"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/domain/payment"
	"kost-booking/internal/domain/user"
	"kost-booking/internal/infra/flowstore"
	"kost-booking/internal/pkg/clock"
	"kost-booking/internal/usecase/queries"
	"kost-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// FlowBuilder drives a real draft to the requested step and reads it back as a FlowView.
type FlowBuilder struct {
	Tenant   user.Identity
	Property *PropertyBuilder
	Now      time.Time
	Phone    string
	Duration int
	MethodID string
	Step     booking.Step
	Failure  booking.Failure
}

func NewFlowBuilder() *FlowBuilder {
	return &FlowBuilder{
		Tenant:   NewIdentityBuilder().Build(),
		Property: NewPropertyBuilder(),
		Now:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.FixedZone("WIB", 7*60*60)),
		Phone:    "081234567890",
		Duration: 1,
		MethodID: "bca",
		Step:     booking.StepDetails,
		Failure:  booking.Failure{Kind: booking.FailureDeclined, Reason: "payment via bca was declined"},
	}
}

func (b *FlowBuilder) With(mutate func(*FlowBuilder)) *FlowBuilder {
	mutate(b)
	return b
}

func (b *FlowBuilder) AtStep(step booking.Step) *FlowBuilder {
	b.Step = step
	return b
}

func (b *FlowBuilder) BuildDraft(t *testing.T) *booking.Draft {
	t.Helper()
	clk := clock.NewMockClock(b.Now)
	factory := booking.NewFactory(clk, booking.NewPricingEngine(), payment.DefaultCatalog(), b.Now.Location())
	prop, err := b.Property.BuildDomain()
	require.NoError(t, err)

	d, err := factory.Open(b.Tenant, prop)
	require.NoError(t, err)
	if b.Step == booking.StepDetails {
		return d
	}

	require.NoError(t, d.UpdateDetails(booking.DetailsPatch{PhoneNumber: &b.Phone, Duration: &b.Duration}))
	fieldErrs, err := d.ContinueToPayment()
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	_, err = d.SelectPaymentMethod(b.MethodID)
	require.NoError(t, err)
	if b.Step == booking.StepPayment {
		return d
	}

	req, ok := d.Submit()
	require.True(t, ok)
	switch b.Step {
	case booking.StepConfirmed:
		rec, err := d.Finalize(req.Attempt, "STL-0123456789ABCDEF", b.Now)
		require.NoError(t, err)
		require.True(t, d.Confirm(req.Attempt, rec))
	case booking.StepFailed:
		require.True(t, d.Fail(req.Attempt, b.Failure))
	}
	return d
}

func (b *FlowBuilder) BuildView(t *testing.T) *queries.FlowView {
	t.Helper()
	d := b.BuildDraft(t)
	sessions := flowstore.NewMemory[uuid.UUID, *shared.Session]()
	s := shared.NewSession(context.Background(), d, b.Now)
	sessions.Put(s.ID(), s)

	v, err := queries.NewFlowQueries(sessions, booking.NewProjector(), clock.NewMockClock(b.Now)).
		Get(context.Background(), b.Tenant, s.ID())
	require.NoError(t, err)
	return v
}
