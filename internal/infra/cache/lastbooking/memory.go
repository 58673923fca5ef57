package lastbooking

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// MemoryStore хранит сериализованные записи в памяти процесса
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Set перезаписывает последнее бронирование пользователя
func (s *MemoryStore) Set(ctx context.Context, booking *domain.BookingRecord) error {
	data, err := encode(booking)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStore, err)
	}

	s.mu.Lock()
	s.records[Key(booking.UserID)] = data
	s.mu.Unlock()
	return nil
}

// Get возвращает последнее бронирование пользователя
func (s *MemoryStore) Get(ctx context.Context, userID string) (*domain.BookingRecord, error) {
	s.mu.RLock()
	data, ok := s.records[Key(userID)]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return decode(data)
}
