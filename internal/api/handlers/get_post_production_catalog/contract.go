package get_post_production_catalog

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type PostProductionCatalog interface {
	ListTiers(ctx context.Context) []domain.Tier
	ListEngineers(ctx context.Context) []domain.Engineer
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
