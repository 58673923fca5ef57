package lastbooking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// RedisStore хранит последнее бронирование пользователя в Redis под ключом lastBooking:<userID>
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище; ttl = 0 означает запись без срока жизни
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Set перезаписывает последнее бронирование пользователя
func (s *RedisStore) Set(ctx context.Context, booking *domain.BookingRecord) error {
	data, err := encode(booking)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStore, err)
	}
	if err := s.client.Set(ctx, Key(booking.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrStore, err)
	}
	return nil
}

// Get возвращает последнее бронирование пользователя
func (s *RedisStore) Get(ctx context.Context, userID string) (*domain.BookingRecord, error) {
	data, err := s.client.Get(ctx, Key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrStore, err)
	}
	return decode(data)
}
