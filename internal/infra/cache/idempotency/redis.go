package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idemp:"

// RedisStore сопоставляет ключ идемпотентности с идентификатором бронирования
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище ключей с заданным временем жизни
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get возвращает идентификатор бронирования, сохраненный под ключом.
// Для зарезервированного ключа возвращает ErrPending.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	bookingID, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: get: %v", ErrStore, err)
	}
	if bookingID == pendingMarker {
		return "", ErrPending
	}
	return bookingID, nil
}

// Reserve занимает ключ на время выполнения запроса. Возвращает false, если ключ уже занят.
func (s *RedisStore) Reserve(ctx context.Context, key string) (bool, error) {
	reserved, err := s.client.SetNX(ctx, keyPrefix+key, pendingMarker, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: setnx: %v", ErrStore, err)
	}
	return reserved, nil
}

// Complete заменяет резерв идентификатором созданного бронирования
func (s *RedisStore) Complete(ctx context.Context, key, bookingID string) error {
	if err := s.client.Set(ctx, keyPrefix+key, bookingID, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrStore, err)
	}
	return nil
}

// Release освобождает ключ после неудачного запроса
func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrStore, err)
	}
	return nil
}
