package shared

import (
	"context"
	"sync"
	"time"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSessionClosed = errs.New("booking flow session is closed")

// Session owns one draft for the lifetime of a tenant's booking flow. Every access to the draft
// goes through Do, which serializes it against the settlement goroutine.
type Session struct {
	id       uuid.UUID
	tenantID uuid.UUID

	mu      sync.Mutex
	draft   *booking.Draft
	closed  bool
	touched time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

func NewSession(parent context.Context, draft *booking.Draft, now time.Time) *Session {
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		id:       draft.ID(),
		tenantID: draft.TenantID(),
		draft:    draft,
		touched:  now,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Session) ID() uuid.UUID       { return s.id }
func (s *Session) TenantID() uuid.UUID { return s.tenantID }

// Context is cancelled when the session closes.
func (s *Session) Context() context.Context { return s.ctx }

// Do runs fn with the session locked and marks it as used at now.
func (s *Session) Do(now time.Time, fn func(d *booking.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.touched = now
	return fn(s.draft)
}

// Peek is Do without refreshing the idle timer, for background callers.
func (s *Session) Peek(fn func(d *booking.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return fn(s.draft)
}

// Close reports false when the session was already closed.
func (s *Session) Close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true
	s.cancel()
	return true
}

func (s *Session) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) IdleFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touched)
}

type SessionStore interface {
	Put(id uuid.UUID, s *Session)
	Get(id uuid.UUID) (*Session, bool)
	Delete(id uuid.UUID)
	Values() []*Session
	Len() int
}
