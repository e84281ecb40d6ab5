package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is the single-process counterpart of RedisCache.
type MemoryCache struct {
	mu         sync.Mutex
	sessions   map[string]entry[domain.Session]
	bookings   map[string]entry[[]domain.Booking]
	locks      map[string]entry[struct{}]
	sessionTTL time.Duration
	lockTTL    time.Duration
	now        func() time.Time
}

func NewMemoryCache(sessionTTL, lockTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		sessions:   make(map[string]entry[domain.Session]),
		bookings:   make(map[string]entry[[]domain.Booking]),
		locks:      make(map[string]entry[struct{}]),
		sessionTTL: sessionTTL,
		lockTTL:    lockTTL,
		now:        time.Now,
	}
}

func (c *MemoryCache) deadline(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(ttl)
}

func (c *MemoryCache) Ping(context.Context) error {
	return nil
}

func (c *MemoryCache) GetSession(_ context.Context, id string) (*domain.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.sessions[id]
	if !ok || e.expired(c.now()) {
		delete(c.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	sess := e.value
	return &sess, nil
}

func (c *MemoryCache) SaveSession(_ context.Context, sess *domain.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[sess.ID] = entry[domain.Session]{value: *sess, expiresAt: c.deadline(c.sessionTTL)}
	return nil
}

func (c *MemoryCache) DeleteSession(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
	delete(c.bookings, id)
	return nil
}

func (c *MemoryCache) GetBookings(_ context.Context, sessionID string) ([]domain.Booking, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.bookings[sessionID]
	if !ok || e.expired(c.now()) {
		delete(c.bookings, sessionID)
		return nil, false, nil
	}
	out := make([]domain.Booking, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

func (c *MemoryCache) SetBookings(_ context.Context, sessionID string, bookings []domain.Booking) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := make([]domain.Booking, len(bookings))
	copy(stored, bookings)
	c.bookings[sessionID] = entry[[]domain.Booking]{value: stored, expiresAt: c.deadline(c.sessionTTL)}
	return nil
}

func (c *MemoryCache) Acquire(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.locks[key]; ok && !e.expired(c.now()) {
		return false, nil
	}
	c.locks[key] = entry[struct{}]{expiresAt: c.deadline(c.lockTTL)}
	return true, nil
}

func (c *MemoryCache) Release(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.locks, key)
	return nil
}
