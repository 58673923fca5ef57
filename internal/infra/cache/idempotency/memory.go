package idempotency

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	bookingID string
	expiresAt time.Time
}

// MemoryStore хранилище ключей идемпотентности в памяти процесса
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore создает хранилище; ttl = 0 означает ключи без срока жизни
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get возвращает идентификатор бронирования, сохраненный под ключом
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return "", ErrNotFound
	}
	if e.bookingID == pendingMarker {
		return "", ErrPending
	}
	return e.bookingID, nil
}

// Reserve занимает ключ, если он еще не занят
func (s *MemoryStore) Reserve(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(key); ok {
		return false, nil
	}
	s.put(key, pendingMarker)
	return true, nil
}

// Complete заменяет резерв идентификатором бронирования
func (s *MemoryStore) Complete(ctx context.Context, key, bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(key, bookingID)
	return nil
}

// Release удаляет ключ
func (s *MemoryStore) Release(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// put вызывается под s.mu
func (s *MemoryStore) put(key, value string) {
	e := entry{bookingID: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[key] = e
}

// lookup вызывается под s.mu; просроченные ключи удаляются
func (s *MemoryStore) lookup(key string) (entry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return entry{}, false
	}
	return e, true
}
