package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/calendar"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/pricing"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса; все ошибки оборачивают ErrValidation
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrValidation)
	}

	if req.StudioID <= 0 {
		return fmt.Errorf("%w: studioId must be positive", ErrValidation)
	}

	// Проверяем, что дата выбрана
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	// Проверяем, что слот выбран
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time slot is required", ErrValidation)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time slot format: %v", ErrValidation, err)
	}

	// Проверяем, что контактный номер указан
	contact := strings.TrimSpace(req.ContactNumber)
	if contact == "" {
		return fmt.Errorf("%w: contact number is required", ErrValidation)
	}

	if len(contact) > domain.MaxContactNumberLength {
		return fmt.Errorf("%w: contact number is too long", ErrValidation)
	}

	if !pricing.IsAllowedDuration(req.DurationHours) {
		return fmt.Errorf("%w: duration must be one of %v hours", ErrValidation, domain.AllowedDurations)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: payment method must be online or studio", ErrValidation)
	}

	if len(req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests are too long", ErrValidation)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно [сегодня, сегодня + windowDays)
func validateDate(date types.Date, now time.Time, windowDays int) error {
	if calendar.IsPast(date, now) {
		return ErrInvalidDate
	}

	if !calendar.InWindow(date, now, windowDays) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, windowDays)
	}

	return nil
}

// validateSlot проверяет, что время совпадает с началом слота и слот доступен
func validateSlot(slots []domain.TimeSlot, startTime types.TimeString) error {
	if startTime.Minutes()%60 != 0 {
		return fmt.Errorf("%w: %s is not on the hour", ErrInvalidTimeSlot, startTime)
	}

	slot, ok := calendar.FindSlot(slots, startTime.Hour())
	if !ok {
		return fmt.Errorf("%w: studio has no slot at %s", ErrInvalidTimeSlot, startTime)
	}

	if !slot.Available {
		return fmt.Errorf("%w: %s has already started", ErrSlotNotAvailable, startTime)
	}

	return nil
}

// idempotencyKey ключ в хранилище; ключи разных пользователей не пересекаются
func idempotencyKey(userID, key string) string {
	return userID + ":" + key
}
