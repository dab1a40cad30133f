// Package uow runs booking writes in Postgres transactions.
package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"kost-booking/internal/infra/pgstore"
	"kost-booking/internal/infra/readstore"
	"kost-booking/internal/infra/repository"
	"kost-booking/internal/pkg/errs"
	"kost-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how hard a transaction is retried. A booking is written after the tenant
// has already paid, so transient failures are worth a few attempts.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
	Max        time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxRetries: 3,
	Base:       100 * time.Millisecond,
	Max:        2 * time.Second,
}

// Backoff doubles per attempt up to Max and adds up to 20% jitter.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	wait := p.Max
	if attempt < 32 {
		if w := p.Base << attempt; w > 0 && w < p.Max {
			wait = w
		}
	}
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int63n(j))
	}
	return wait
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *pgstore.Queries
	policy RetryPolicy
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgstore.Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: DefaultRetryPolicy,
		logger: logger,
	}
}

// Within runs fn in a ReadCommitted transaction. fn may run more than once.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; attempt <= u.policy.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := u.policy.Backoff(attempt - 1)
			u.logger.Warn("retrying transaction",
				"attempt", attempt+1,
				"wait_ms", wait.Milliseconds(),
				"error", err.Error())
			if werr := sleep(ctx, wait); werr != nil {
				return errs.Wrap(werr, "transaction retry abandoned")
			}
		}

		err = u.attempt(ctx, options, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
	}

	u.logger.Error("transaction failed after max retries",
		"attempts", u.policy.MaxRetries+1,
		"error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// attempt keeps begin, fn and rollback in one frame so no defer piles up across retries.
func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsRetryable reports serialization failures, deadlocks and errors pgx knows happened before
// anything reached the server.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
			return true
		}
		return false
	}
	return pgconn.SafeToRetry(err)
}

type pgTx struct {
	dbtx pgstore.DBTX
	uow  *PostgresUoW

	bookingRepo      shared.BookingRepository
	notificationRepo shared.NotificationRepository
}

func (t *pgTx) DB() pgstore.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx pgstore.DBTX

	propertyStore shared.PropertyReadStore
}

func (r *commandReads) PropertyByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	if r.propertyStore == nil {
		r.propertyStore = readstore.NewPropertyReadStore(r.uow.q, r.dbtx)
	}
	return r.propertyStore.FindByID(ctx, id)
}
