package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/calendar"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

// UseCase use case для получения слотов студии на дату
type UseCase struct {
	studios      StudioCatalog
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(studios StudioCatalog, windowDays int, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		studios:      studios,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: studio=%d, date=%s", req.StudioID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем студию
	studio, err := uc.studios.GetStudio(ctx, req.StudioID)
	if err != nil {
		if errors.Is(err, catalog.ErrStudioNotFound) {
			uc.logger.Warn("GetAvailableSlots: studio id=%d not found", req.StudioID)
			return nil, ErrStudioNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get studio id=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	// 4. Валидация даты относительно окна бронирования
	if err := validateDate(req.Date, now, uc.windowDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Генерируем слоты дня
	slots := calendar.GenerateSlots(req.Date, studio.HourlyRate, now)
	available := calendar.CountAvailable(slots)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for studio=%d, date=%s",
		available, len(slots), req.StudioID, req.Date)

	return &Response{
		StudioID:       studio.ID,
		StudioName:     studio.Name,
		Date:           req.Date,
		HourlyRate:     studio.HourlyRate,
		Slots:          slots,
		AvailableCount: available,
	}, nil
}
