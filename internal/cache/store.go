package cache

import (
	"context"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/lifecycle"
)

// Store is everything the HTTP layer and the services keep between requests.
type Store interface {
	lifecycle.Guard
	Ping(ctx context.Context) error
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	SaveSession(ctx context.Context, sess *domain.Session) error
	DeleteSession(ctx context.Context, id string) error
	GetBookings(ctx context.Context, sessionID string) ([]domain.Booking, bool, error)
	SetBookings(ctx context.Context, sessionID string, bookings []domain.Booking) error
}

var (
	_ Store = (*RedisCache)(nil)
	_ Store = (*MemoryCache)(nil)
)
