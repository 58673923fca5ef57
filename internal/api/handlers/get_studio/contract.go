package get_studio

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type StudioCatalog interface {
	GetStudio(ctx context.Context, id int64) (*domain.Studio, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
