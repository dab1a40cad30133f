package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/domain/property"
	"kost-booking/internal/domain/user"
	"kost-booking/internal/infra"
	"kost-booking/internal/pkg/clock"
	"kost-booking/internal/pkg/config"
	"kost-booking/internal/pkg/errs"
	"kost-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking_flow.go -destination=../../../tests/mock/commands/booking_flow.go -package=commandsmock

var ErrShuttingDown = errs.New("booking service is shutting down")

const notificationTopicBookingConfirmed = "booking_confirmed"

type BookingFlowCommands interface {
	Open(ctx context.Context, actor user.Identity, propertyID uuid.UUID) (uuid.UUID, error)
	UpdateDetails(ctx context.Context, actor user.Identity, flowID uuid.UUID, patch booking.DetailsPatch) error
	Continue(ctx context.Context, actor user.Identity, flowID uuid.UUID) error
	Back(ctx context.Context, actor user.Identity, flowID uuid.UUID) error
	SelectPaymentMethod(ctx context.Context, actor user.Identity, flowID uuid.UUID, methodID string) error
	Submit(ctx context.Context, actor user.Identity, flowID uuid.UUID) (bool, error)
	Retry(ctx context.Context, actor user.Identity, flowID uuid.UUID) error
	Close(ctx context.Context, actor user.Identity, flowID uuid.UUID) error
}

// FlowLifecycle is driven by the application lifecycle rather than by requests.
type FlowLifecycle interface {
	SweepIdle() int
	RunSweeper(ctx context.Context, interval time.Duration)
	Shutdown(ctx context.Context) error
}

type BookingFlowService interface {
	BookingFlowCommands
	FlowLifecycle
}

type bookingFlowCommandsImpl struct {
	uow      shared.UnitOfWork
	sessions shared.SessionStore
	gateway  SettlementGateway
	factory  *booking.Factory
	clock    clock.Clock
	logger   *slog.Logger

	settlementTimeout time.Duration
	idleTTL           time.Duration

	root     context.Context
	stopRoot context.CancelFunc
	mu       sync.Mutex
	stopped  bool
	inflight sync.WaitGroup
}

func NewBookingFlowCommands(
	uow shared.UnitOfWork,
	sessions shared.SessionStore,
	gateway SettlementGateway,
	factory *booking.Factory,
	clock clock.Clock,
	cfg config.BookingConfig,
	logger *slog.Logger,
) BookingFlowService {
	root, stop := context.WithCancel(context.Background())
	return &bookingFlowCommandsImpl{
		uow:               uow,
		sessions:          sessions,
		gateway:           gateway,
		factory:           factory,
		clock:             clock,
		logger:            logger,
		settlementTimeout: cfg.SettlementTimeout,
		idleTTL:           cfg.FlowIdleTTL,
		root:              root,
		stopRoot:          stop,
	}
}

func (u *bookingFlowCommandsImpl) Open(ctx context.Context, actor user.Identity, propertyID uuid.UUID) (uuid.UUID, error) {
	if u.isStopped() {
		return uuid.Nil, ErrShuttingDown
	}

	prop, err := u.loadProperty(ctx, propertyID)
	if err != nil {
		return uuid.Nil, err
	}

	draft, err := u.factory.Open(actor, prop)
	if err != nil {
		return uuid.Nil, mapDomainErr(err)
	}

	s := shared.NewSession(u.root, draft, u.clock.Now())
	u.sessions.Put(s.ID(), s)

	u.logger.Info("booking flow opened",
		"flow_id", s.ID(),
		"property_id", prop.ID(),
		"tenant_id", actor.ID)
	return s.ID(), nil
}

func (u *bookingFlowCommandsImpl) loadProperty(ctx context.Context, propertyID uuid.UUID) (*property.Property, error) {
	snap, err := u.uow.CommandReads().PropertyByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	prop, err := property.NewProperty(
		snap.ID,
		snap.Title,
		snap.Address,
		snap.City,
		snap.Price,
		snap.RentalPeriod,
		snap.Available,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return prop, nil
}

func (u *bookingFlowCommandsImpl) UpdateDetails(_ context.Context, actor user.Identity, flowID uuid.UUID, patch booking.DetailsPatch) error {
	return u.withDraft(actor, flowID, func(d *booking.Draft) error {
		return d.UpdateDetails(patch)
	})
}

// Continue leaves the field errors on the draft when validation fails; that is not an error here.
func (u *bookingFlowCommandsImpl) Continue(_ context.Context, actor user.Identity, flowID uuid.UUID) error {
	return u.withDraft(actor, flowID, func(d *booking.Draft) error {
		_, err := d.ContinueToPayment()
		return err
	})
}

func (u *bookingFlowCommandsImpl) Back(_ context.Context, actor user.Identity, flowID uuid.UUID) error {
	return u.withDraft(actor, flowID, func(d *booking.Draft) error {
		return d.BackToDetails()
	})
}

// SelectPaymentMethod ignores ids outside the catalog.
func (u *bookingFlowCommandsImpl) SelectPaymentMethod(_ context.Context, actor user.Identity, flowID uuid.UUID, methodID string) error {
	return u.withDraft(actor, flowID, func(d *booking.Draft) error {
		_, err := d.SelectPaymentMethod(methodID)
		return err
	})
}

func (u *bookingFlowCommandsImpl) Retry(_ context.Context, actor user.Identity, flowID uuid.UUID) error {
	return u.withDraft(actor, flowID, func(d *booking.Draft) error {
		return d.Retry()
	})
}

// Submit starts settlement in the background and reports whether an attempt was opened.
func (u *bookingFlowCommandsImpl) Submit(_ context.Context, actor user.Identity, flowID uuid.UUID) (bool, error) {
	s, err := u.session(actor, flowID)
	if err != nil {
		return false, err
	}

	var (
		req     booking.SettlementRequest
		started bool
	)
	err = s.Do(u.clock.Now(), func(d *booking.Draft) error {
		req, started = d.Submit()
		if !started {
			return nil
		}
		// registering under the session lock keeps Shutdown from missing this attempt
		if !u.track() {
			d.Fail(req.Attempt, booking.Failure{
				Kind:   booking.FailureGatewayError,
				Reason: "service is shutting down",
			})
			started = false
		}
		return nil
	})
	if err != nil {
		return false, u.sessionErr(err)
	}
	if !started {
		return false, nil
	}

	go u.settle(s, req)
	return true, nil
}

func (u *bookingFlowCommandsImpl) Close(_ context.Context, actor user.Identity, flowID uuid.UUID) error {
	s, err := u.session(actor, flowID)
	if err != nil {
		return err
	}
	u.closeSession(s, "closed by tenant")
	return nil
}

func (u *bookingFlowCommandsImpl) closeSession(s *shared.Session, reason string) {
	if s.Close() {
		u.logger.Info("booking flow closed", "flow_id", s.ID(), "reason", reason)
	}
	u.sessions.Delete(s.ID())
}

func (u *bookingFlowCommandsImpl) settle(s *shared.Session, req booking.SettlementRequest) {
	defer u.inflight.Done()

	logger := u.logger.With("flow_id", s.ID(), "attempt", req.Attempt)
	ctx, cancel := context.WithTimeout(s.Context(), u.settlementTimeout)
	defer cancel()

	var (
		receipt SettlementReceipt
		err     error
	)
	if req.AlreadySettled() {
		logger.Info("payment already settled, storing booking", "reference", req.SettledReference)
		receipt = SettlementReceipt{Reference: req.SettledReference}
	} else {
		logger.Info("settlement started", "method", req.MethodID, "amount", req.Amount.Amount())
		receipt, err = u.awaitSettlement(ctx, SettlementRequest{
			FlowID:   s.ID(),
			Attempt:  req.Attempt,
			Amount:   req.Amount,
			MethodID: req.MethodID,
		})
	}

	if s.Context().Err() != nil {
		logger.Info("settlement abandoned, flow closed")
		return
	}
	if err != nil {
		u.fail(s, req.Attempt, settlementFailure(ctx, err), logger)
		return
	}

	var rec *booking.Record
	err = s.Peek(func(d *booking.Draft) error {
		var finalizeErr error
		rec, finalizeErr = d.Finalize(req.Attempt, receipt.Reference, u.clock.Now())
		return finalizeErr
	})
	if err != nil {
		logger.Warn("settled attempt is no longer current", "reference", receipt.Reference, "error", err)
		return
	}

	// the payment went through, so the record is stored even if the tenant leaves now
	persistCtx, persistCancel := context.WithTimeout(context.WithoutCancel(ctx), u.settlementTimeout)
	defer persistCancel()
	if err := u.persist(persistCtx, rec); err != nil {
		logger.Error("failed to store confirmed booking", "reference", receipt.Reference, "error", err)
		failure := booking.Failure{
			Kind:   booking.FailureSubmissionError,
			Reason: "booking could not be saved",
		}
		applied := false
		_ = s.Peek(func(d *booking.Draft) error {
			applied = d.FailSubmission(req.Attempt, receipt.Reference, failure)
			return nil
		})
		logger.Warn("settlement failed", "kind", failure.Kind, "reason", failure.Reason, "flow_updated", applied)
		return
	}

	confirmed := false
	_ = s.Peek(func(d *booking.Draft) error {
		confirmed = d.Confirm(req.Attempt, rec)
		return nil
	})
	logger.Info("booking confirmed", "booking_id", rec.ID(), "reference", receipt.Reference, "flow_updated", confirmed)
}

type settlementResult struct {
	receipt SettlementReceipt
	err     error
}

// awaitSettlement returns when the gateway answers or ctx ends, whichever comes first. A gateway
// that ignores ctx is left to finish on its own; its answer is dropped.
func (u *bookingFlowCommandsImpl) awaitSettlement(ctx context.Context, req SettlementRequest) (SettlementReceipt, error) {
	done := make(chan settlementResult, 1)
	go func() {
		receipt, err := u.gateway.Settle(ctx, req)
		done <- settlementResult{receipt: receipt, err: err}
	}()

	select {
	case res := <-done:
		return res.receipt, res.err
	case <-ctx.Done():
		return SettlementReceipt{}, ctx.Err()
	}
}

func (u *bookingFlowCommandsImpl) fail(s *shared.Session, attempt int, f booking.Failure, logger *slog.Logger) {
	applied := false
	_ = s.Peek(func(d *booking.Draft) error {
		applied = d.Fail(attempt, f)
		return nil
	})
	logger.Warn("settlement failed", "kind", f.Kind, "reason", f.Reason, "flow_updated", applied)
}

func settlementFailure(ctx context.Context, err error) booking.Failure {
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded),
		errs.Is(err, errs.ErrSettlementTimedOut):
		return booking.Failure{Kind: booking.FailureTimeout, Reason: "payment confirmation timed out"}
	case errs.Is(err, errs.ErrSettlementFailed):
		return booking.Failure{Kind: booking.FailureDeclined, Reason: err.Error()}
	default:
		return booking.Failure{Kind: booking.FailureGatewayError, Reason: "payment provider is unavailable"}
	}
}

func (u *bookingFlowCommandsImpl) persist(ctx context.Context, rec *booking.Record) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Bookings().Create(ctx, tx.DB(), rec); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(map[string]any{
			"booking_id": rec.ID(),
			"tenant_id":  rec.TenantID(),
			"type":       notificationTopicBookingConfirmed,
		})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), "email", notificationTopicBookingConfirmed, payload, u.clock.Now())
	})
}

// SweepIdle closes flows untouched for longer than the idle TTL and returns how many it closed.
func (u *bookingFlowCommandsImpl) SweepIdle() int {
	now := u.clock.Now()
	closed := 0
	for _, s := range u.sessions.Values() {
		if s.IsClosed() {
			u.sessions.Delete(s.ID())
			continue
		}
		if s.IdleFor(now) >= u.idleTTL {
			u.closeSession(s, "idle")
			closed++
		}
	}
	return closed
}

func (u *bookingFlowCommandsImpl) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := u.SweepIdle(); n > 0 {
				u.logger.Info("expired idle booking flows", "count", n)
			}
		}
	}
}

// Shutdown closes every flow and waits for running settlements to return.
func (u *bookingFlowCommandsImpl) Shutdown(ctx context.Context) error {
	u.mu.Lock()
	u.stopped = true
	u.mu.Unlock()

	u.stopRoot()
	for _, s := range u.sessions.Values() {
		u.closeSession(s, "shutdown")
	}

	done := make(chan struct{})
	go func() {
		u.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "waiting for in-flight settlements")
	}
}

func (u *bookingFlowCommandsImpl) track() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.stopped {
		return false
	}
	u.inflight.Add(1)
	return true
}

func (u *bookingFlowCommandsImpl) isStopped() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.stopped
}

// session hides flows owned by someone else behind the same not-found error.
func (u *bookingFlowCommandsImpl) session(actor user.Identity, flowID uuid.UUID) (*shared.Session, error) {
	s, ok := u.sessions.Get(flowID)
	if !ok || s.TenantID() != actor.ID {
		return nil, errs.ErrFlowNotFound
	}
	return s, nil
}

func (u *bookingFlowCommandsImpl) withDraft(actor user.Identity, flowID uuid.UUID, fn func(d *booking.Draft) error) error {
	s, err := u.session(actor, flowID)
	if err != nil {
		return err
	}
	if err := s.Do(u.clock.Now(), fn); err != nil {
		return u.sessionErr(err)
	}
	return nil
}

func (u *bookingFlowCommandsImpl) sessionErr(err error) error {
	if errs.Is(err, shared.ErrSessionClosed) {
		return errs.ErrFlowNotFound
	}
	return mapDomainErr(err)
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidDuration):
		return errs.Mark(err, errs.ErrInvalidDuration)
	case errors.Is(err, booking.ErrCheckInInPast):
		return errs.Mark(err, errs.ErrInvalidCheckIn)
	case errors.Is(err, booking.ErrDraftLocked):
		return errs.Mark(err, errs.ErrDraftLocked)
	case errors.Is(err, booking.ErrIllegalTransition):
		return errs.Mark(err, errs.ErrIllegalTransition)
	case errors.Is(err, booking.ErrPropertyUnavailable):
		return errs.Mark(err, errs.ErrPropertyUnavailable)
	case errors.Is(err, booking.ErrNotBookable):
		return errs.Mark(err, errs.ErrForbidden)
	case errors.Is(err, booking.ErrInvalidDurationUnit),
		errors.Is(err, booking.ErrAmountOverflow),
		errors.Is(err, booking.ErrNegativePrice):
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return err
	}
}
