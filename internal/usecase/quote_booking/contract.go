package quote_booking

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// StudioCatalog интерфейс каталога студий
type StudioCatalog interface {
	GetStudio(ctx context.Context, id int64) (*domain.Studio, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
