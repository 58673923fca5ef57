package create_post_production_order

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// TierCatalog интерфейс каталога тарифов постпродакшна
type TierCatalog interface {
	GetTier(ctx context.Context, id string) (*domain.Tier, error)
}

// IDGenerator интерфейс генератора номеров заказа
type IDGenerator interface {
	NewOrderID(now time.Time) string
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

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
