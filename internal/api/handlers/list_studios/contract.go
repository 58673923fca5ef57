package list_studios

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

type StudioCatalog interface {
	ListStudios(ctx context.Context, filter catalog.StudioFilter) ([]domain.Studio, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
