package lifecycle

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/sunshinehotel/internal/clock"
	"github.com/Domenick1991/sunshinehotel/internal/domain"
)

// Canceller is the part of the hotel API the manager needs.
type Canceller interface {
	CancelBooking(ctx context.Context, sess *domain.Session, bookingID string) (string, error)
}

type CancelOutcome struct {
	Booking domain.Booking           `json:"booking"`
	Quote   domain.CancellationQuote `json:"cancellation"`
	Message string                   `json:"message"`
}

// Manager applies the booking state machine and the cancellation policy.
// It works on booking values: the caller's copy is untouched unless Cancel succeeds.
type Manager struct {
	api    Canceller
	guard  Guard
	policy domain.CancellationPolicy
	clock  clock.Clock
	loc    *time.Location
}

type ManagerOption func(*Manager)

func WithPolicy(p domain.CancellationPolicy) ManagerOption {
	return func(m *Manager) {
		m.policy = p
	}
}

func WithClock(c clock.Clock) ManagerOption {
	return func(m *Manager) {
		m.clock = c
	}
}

// WithLocation sets the hotel timezone check-in midnight is taken in.
func WithLocation(loc *time.Location) ManagerOption {
	return func(m *Manager) {
		if loc != nil {
			m.loc = loc
		}
	}
}

func NewManager(api Canceller, guard Guard, opts ...ManagerOption) *Manager {
	m := &Manager{
		api:    api,
		guard:  guard,
		policy: domain.DefaultCancellationPolicy(),
		clock:  clock.NewSystem(),
		loc:    time.UTC,
	}
	if m.guard == nil {
		m.guard = NewMemoryGuard()
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Policy() domain.CancellationPolicy {
	return m.policy
}

func (m *Manager) Location() *time.Location {
	return m.loc
}

// Quote evaluates the cancellation policy for b at the current time.
func (m *Manager) Quote(b domain.Booking) domain.CancellationQuote {
	return m.policy.Evaluate(b.CheckInDate, m.loc, m.clock.Now(), b.TotalPrice)
}

// Cancel asks the hotel API to cancel b and returns the cancelled copy once the API confirms.
// On any failure the returned booking is b unchanged.
func (m *Manager) Cancel(ctx context.Context, sess *domain.Session, b domain.Booking) (CancelOutcome, error) {
	if !b.Status.CanCancel() {
		return CancelOutcome{Booking: b}, fmt.Errorf("%w: booking %s is %s", domain.ErrBookingNotCancellable, b.BookingID, b.Status)
	}

	key := guardKey(sess, b.BookingID)
	ok, err := m.guard.Acquire(ctx, key)
	if err != nil {
		return CancelOutcome{Booking: b}, fmt.Errorf("acquire cancel guard: %w", err)
	}
	if !ok {
		return CancelOutcome{Booking: b}, domain.ErrCancellationInProgress
	}
	defer func() {
		if err := m.guard.Release(context.WithoutCancel(ctx), key); err != nil {
			log.Printf("failed to release cancel guard for booking %s: %v", b.BookingID, err)
		}
	}()

	quote := m.Quote(b)

	msg, err := m.api.CancelBooking(ctx, sess, b.BookingID)
	if err != nil {
		return CancelOutcome{Booking: b, Quote: quote}, err
	}

	cancelled := b
	if err := cancelled.Cancel(); err != nil {
		return CancelOutcome{Booking: b, Quote: quote}, err
	}
	log.Printf("booking %s cancelled (%s, charge %d)", b.BookingID, quote.Charge, quote.ChargeAmount)
	return CancelOutcome{Booking: cancelled, Quote: quote, Message: msg}, nil
}

func guardKey(sess *domain.Session, bookingID string) string {
	if sess == nil {
		return "cancel:" + bookingID
	}
	return "cancel:" + sess.ID + ":" + bookingID
}
