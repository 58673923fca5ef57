package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/payments"
)

// StudioCatalog интерфейс каталога студий
type StudioCatalog interface {
	GetStudio(ctx context.Context, id int64) (*domain.Studio, error)
}

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.BookingRecord) (*domain.BookingRecord, error)
	GetByID(ctx context.Context, bookingID string) (*domain.BookingRecord, error)
}

// LastBookingStore интерфейс хранилища последнего бронирования пользователя
type LastBookingStore interface {
	Set(ctx context.Context, booking *domain.BookingRecord) error
}

// IdempotencyStore интерфейс хранилища ключей идемпотентности
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Reserve(ctx context.Context, key string) (bool, error)
	Complete(ctx context.Context, key, bookingID string) error
	Release(ctx context.Context, key string) error
}

// PaymentProcessor интерфейс шага отправки бронирования
type PaymentProcessor interface {
	Submit(ctx context.Context, req payments.SubmitRequest) (*payments.Receipt, error)
}

// IDGenerator интерфейс генератора номеров бронирования
type IDGenerator interface {
	NewBookingID(now time.Time) string
}

// Metrics интерфейс бизнес-метрик бронирования
type Metrics interface {
	IncBookingCreated(status string)
	IncBookingFailed(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в часовом поясе сервиса
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.Location)
}
