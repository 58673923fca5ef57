package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/calendar"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudioID <= 0 {
		return fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно [сегодня, сегодня + windowDays)
func validateDate(date types.Date, now time.Time, windowDays int) error {
	// Прошедшие даты генератор слотов не блокирует, поэтому отсекаем их здесь
	if calendar.IsPast(date, now) {
		return ErrInvalidDate
	}

	if !calendar.InWindow(date, now, windowDays) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, windowDays)
	}

	return nil
}
