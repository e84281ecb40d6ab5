package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/sunshinehotel/config"
	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps sessions, each session's booking list and the per-booking cancel locks.
type RedisCache struct {
	client     *redis.Client
	sessionTTL time.Duration
	lockTTL    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, sessionTTL, lockTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		sessionTTL, lockTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, sessionTTL, lockTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     client,
		sessionTTL: sessionTTL,
		lockTTL:    lockTTL,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	data, err := c.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (c *RedisCache) SaveSession(ctx context.Context, sess *domain.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(sess.ID), payload, c.sessionTTL).Err()
}

// DeleteSession drops the session together with its booking list.
func (c *RedisCache) DeleteSession(ctx context.Context, id string) error {
	return c.client.Del(ctx, sessionKey(id), bookingsKey(id)).Err()
}

// GetBookings returns the last booking list the hotel API confirmed for the session.
// The bool is false when nothing has been stored yet.
func (c *RedisCache) GetBookings(ctx context.Context, sessionID string) ([]domain.Booking, bool, error) {
	data, err := c.client.Get(ctx, bookingsKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, false, err
	}
	return bookings, true, nil
}

func (c *RedisCache) SetBookings(ctx context.Context, sessionID string, bookings []domain.Booking) error {
	payload, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, bookingsKey(sessionID), payload, c.sessionTTL).Err()
}

// Acquire takes the lock for key; it expires on its own after lockTTL.
func (c *RedisCache) Acquire(ctx context.Context, key string) (bool, error) {
	return c.client.SetNX(ctx, lockKey(key), "locked", c.lockTTL).Result()
}

func (c *RedisCache) Release(ctx context.Context, key string) error {
	return c.client.Del(ctx, lockKey(key)).Err()
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func bookingsKey(sessionID string) string {
	return fmt.Sprintf("session:%s:bookings", sessionID)
}

func lockKey(key string) string {
	return "lock:" + key
}
