package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/pricing"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

// UseCase use case для расчета стоимости сессии
type UseCase struct {
	studios StudioCatalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(studios StudioCatalog, logger Logger) *UseCase {
	return &UseCase{
		studios: studios,
		logger:  logger,
	}
}

// Execute выполняет use case расчета стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: studio=%d, duration=%d", req.StudioID, req.DurationHours)

	// 1. Валидация входных данных
	if req.StudioID <= 0 {
		return nil, fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}

	// 2. Получаем студию
	studio, err := uc.studios.GetStudio(ctx, req.StudioID)
	if err != nil {
		if errors.Is(err, catalog.ErrStudioNotFound) {
			uc.logger.Warn("QuoteBooking: studio id=%d not found", req.StudioID)
			return nil, ErrStudioNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get studio id=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	// 3. Проверяем ставку и длительность
	if err := pricing.Validate(studio.HourlyRate, req.DurationHours); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed for studio=%d: %v", req.StudioID, err)
		switch {
		case errors.Is(err, pricing.ErrInvalidDuration):
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		case errors.Is(err, pricing.ErrInvalidRate):
			return nil, fmt.Errorf("%w: %v", ErrInvalidRate, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 4. Считаем стоимость
	quote := pricing.Quote(studio.HourlyRate, req.DurationHours)

	return &Response{
		StudioID:   studio.ID,
		StudioName: studio.Name,
		Quote:      quote,
	}, nil
}
