package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// MemoryRepository хранилище бронирований в памяти процесса; используется при storage.driver = "memory"
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.BookingRecord
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: make(map[string]domain.BookingRecord)}
}

// Create сохраняет копию бронирования
func (r *MemoryRepository) Create(ctx context.Context, booking *domain.BookingRecord) (*domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.BookingID]; ok {
		return nil, fmt.Errorf("%w: booking_id=%s", ErrBookingExists, booking.BookingID)
	}
	r.bookings[booking.BookingID] = *booking

	created := *booking
	return &created, nil
}

// GetByID получает бронирование по идентификатору
func (r *MemoryRepository) GetByID(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[bookingID]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

// GetByUserID получает бронирования пользователя в том же порядке, что и Repository
func (r *MemoryRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.BookingRecord, error) {
	r.mu.RLock()
	bookings := make([]*domain.BookingRecord, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			booking := b
			bookings = append(bookings, &booking)
		}
	}
	r.mu.RUnlock()

	sort.Slice(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime.IsAfter(b.StartTime)
		}
		return a.BookingID < b.BookingID
	})

	return bookings, nil
}
