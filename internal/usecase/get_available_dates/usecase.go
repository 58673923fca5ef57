package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/calendar"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// UseCase use case для получения окна дат, доступных для бронирования
type UseCase struct {
	studios      StudioCatalog
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; windowDays - максимальный размер окна
func NewUseCase(studios StudioCatalog, windowDays int, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		studios:      studios,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute выполняет use case получения окна дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: studio=%d, days=%d", req.StudioID, req.Days)

	// 1. Валидация входных данных
	days, err := uc.resolveWindow(req)
	if err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что студия существует
	if _, err := uc.studios.GetStudio(ctx, req.StudioID); err != nil {
		if errors.Is(err, catalog.ErrStudioNotFound) {
			uc.logger.Warn("GetAvailableDates: studio id=%d not found", req.StudioID)
			return nil, ErrStudioNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get studio id=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	// 3. Генерируем окно дат от сегодняшнего дня
	now := uc.timeProvider.Now()
	dates := calendar.GenerateDates(now, days)

	return &Response{
		StudioID: req.StudioID,
		Today:    types.NewDate(now),
		Dates:    dates,
	}, nil
}

// resolveWindow возвращает размер окна: 0 - окно из конфигурации, больше окна нельзя
func (uc *UseCase) resolveWindow(req *Request) (int, error) {
	if req.StudioID <= 0 {
		return 0, fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}
	if req.Days == 0 {
		return uc.windowDays, nil
	}
	if req.Days < 0 || req.Days > uc.windowDays {
		return 0, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, uc.windowDays)
	}
	return req.Days, nil
}
