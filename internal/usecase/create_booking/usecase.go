package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/calendar"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	idempotencyStore "github.com/m04kA/SMC-StudioBooking/internal/infra/cache/idempotency"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/payments"
	"github.com/m04kA/SMC-StudioBooking/internal/pricing"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

// Причины неудачных отправок для метрик
const (
	failureReasonPayment   = "payment"
	failureReasonCancelled = "cancelled"
	failureReasonStorage   = "storage"
)

// Dependencies зависимости use case
type Dependencies struct {
	Studios      StudioCatalog
	Bookings     BookingRepository
	LastBookings LastBookingStore
	Idempotency  IdempotencyStore
	Payments     PaymentProcessor
	IDs          IDGenerator
	Metrics      Metrics
}

// UseCase use case для создания бронирования
type UseCase struct {
	studios      StudioCatalog
	bookingRepo  BookingRepository
	lastBookings LastBookingStore
	idempotency  IdempotencyStore
	payments     PaymentProcessor
	ids          IDGenerator
	metrics      Metrics
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(deps Dependencies, windowDays int, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		studios:      deps.Studios,
		bookingRepo:  deps.Bookings,
		lastBookings: deps.LastBookings,
		idempotency:  deps.Idempotency,
		payments:     deps.Payments,
		ids:          deps.IDs,
		metrics:      deps.Metrics,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// При сбое шага отправки ничего не сохраняется. Ключ идемпотентности резервируется
// до шага отправки: параллельный запрос с тем же ключом получает ErrRequestInProgress,
// повторный запрос после успеха получает уже созданное бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, studio=%d, date=%s, time=%s, duration=%d, payment=%s",
		req.UserID, req.StudioID, req.Date, req.StartTime, req.DurationHours, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Повторный запрос с тем же ключом идемпотентности
	if req.IdempotencyKey != "" {
		replayed, err := uc.findReplay(ctx, req)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return replayed, nil
		}
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Получаем студию
	studio, err := uc.studios.GetStudio(ctx, req.StudioID)
	if err != nil {
		if errors.Is(err, catalog.ErrStudioNotFound) {
			uc.logger.Warn("CreateBooking: studio id=%d not found", req.StudioID)
			return nil, ErrStudioNotFound
		}
		uc.logger.Error("CreateBooking: failed to get studio id=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	// 5. Валидация даты относительно окна бронирования
	if err := validateDate(req.Date, now, uc.windowDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 6. Проверяем, что выбранный слот существует и доступен
	slots := calendar.GenerateSlots(req.Date, studio.HourlyRate, now)
	if err := validateSlot(slots, req.StartTime); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 7. Считаем стоимость
	if err := pricing.Validate(studio.HourlyRate, req.DurationHours); err != nil {
		uc.logger.Error("CreateBooking: studio id=%d cannot be priced: %v", studio.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	quote := pricing.Quote(studio.HourlyRate, req.DurationHours)

	// 8. Резервируем ключ идемпотентности до шага отправки
	var key string
	if req.IdempotencyKey != "" {
		key = idempotencyKey(req.UserID, req.IdempotencyKey)
		reserved, err := uc.idempotency.Reserve(ctx, key)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to reserve idempotency key for user=%s: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: failed to reserve idempotency key: %v", ErrInternal, err)
		}
		if !reserved {
			replayed, err := uc.findReplay(ctx, req)
			if err != nil {
				return nil, err
			}
			if replayed != nil {
				return replayed, nil
			}
			uc.logger.Warn("CreateBooking: idempotency key for user=%s is held by another request", req.UserID)
			return nil, ErrRequestInProgress
		}
	}

	// 9. Шаг отправки (имитация асинхронной обработки)
	_, err = uc.payments.Submit(ctx, payments.SubmitRequest{
		UserID:        req.UserID,
		StudioID:      studio.ID,
		Amount:        quote.Total,
		PaymentMethod: string(req.PaymentMethod),
	})
	if err != nil {
		uc.releaseKey(ctx, key)
		reason := failureReasonPayment
		if errors.Is(err, payments.ErrCancelled) {
			reason = failureReasonCancelled
		}
		uc.metrics.IncBookingFailed(reason)
		uc.logger.Warn("CreateBooking: submission failed for user=%s, studio=%d: %v", req.UserID, studio.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	// 10. Формируем запись бронирования
	booking := &domain.BookingRecord{
		BookingID:       uc.ids.NewBookingID(now),
		UserID:          req.UserID,
		StudioID:        studio.ID,
		StudioName:      studio.Name,
		Engineer:        studio.Engineer,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationHours:   req.DurationHours,
		Subtotal:        quote.Subtotal,
		PlatformFee:     quote.PlatformFee,
		TotalPrice:      quote.Total,
		PaymentMethod:   req.PaymentMethod,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		ContactNumber:   strings.TrimSpace(req.ContactNumber),
		Status:          domain.StatusFor(req.PaymentMethod),
		CreatedAt:       now,
	}

	// 11. Сохраняем бронирование
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.releaseKey(ctx, key)
		uc.metrics.IncBookingFailed(failureReasonStorage)
		uc.logger.Error("CreateBooking: failed to save booking id=%s: %v", booking.BookingID, err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	// 12. Обновляем последнее бронирование пользователя; бронирование уже сохранено,
	// поэтому ошибка только логируется
	if err := uc.lastBookings.Set(ctx, created); err != nil {
		uc.logger.Error("CreateBooking: failed to update last booking for user=%s: %v", req.UserID, err)
	}

	// 13. Привязываем ключ идемпотентности к бронированию
	if key != "" {
		if err := uc.idempotency.Complete(ctx, key, created.BookingID); err != nil {
			uc.logger.Error("CreateBooking: failed to complete idempotency key for booking id=%s: %v", created.BookingID, err)
		}
	}

	uc.metrics.IncBookingCreated(string(created.Status))
	uc.logger.Info("CreateBooking: successfully created booking id=%s, status=%s, total=%s",
		created.BookingID, created.Status, created.TotalPrice.String())

	return &Response{
		Booking: *created,
		Quote:   quote,
	}, nil
}

// findReplay возвращает бронирование, ранее созданное с тем же ключом идемпотентности
func (uc *UseCase) findReplay(ctx context.Context, req *Request) (*Response, error) {
	key := idempotencyKey(req.UserID, req.IdempotencyKey)

	bookingID, err := uc.idempotency.Get(ctx, key)
	if errors.Is(err, idempotencyStore.ErrNotFound) {
		return nil, nil
	}
	if errors.Is(err, idempotencyStore.ErrPending) {
		uc.logger.Warn("CreateBooking: request with the same idempotency key is in progress for user=%s", req.UserID)
		return nil, ErrRequestInProgress
	}
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read idempotency key for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to read idempotency key: %v", ErrInternal, err)
	}

	existing, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		uc.logger.Warn("CreateBooking: idempotency key points to missing booking id=%s, submitting again", bookingID)
		uc.releaseKey(ctx, key)
		return nil, nil
	}
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: replaying booking id=%s for user=%s", existing.BookingID, req.UserID)

	quote := domain.PriceQuote{
		DurationHours:   existing.DurationHours,
		Subtotal:        existing.Subtotal,
		PlatformFeeRate: domain.PlatformFeeRate,
		PlatformFee:     existing.PlatformFee,
		Total:           existing.TotalPrice,
	}
	if existing.DurationHours > 0 {
		quote.HourlyRate = existing.Subtotal.Div(decimal.NewFromInt(int64(existing.DurationHours)))
	}

	return &Response{
		Booking:  *existing,
		Quote:    quote,
		Replayed: true,
	}, nil
}

// releaseKey освобождает ключ идемпотентности, чтобы клиент мог повторить запрос
func (uc *UseCase) releaseKey(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := uc.idempotency.Release(context.WithoutCancel(ctx), key); err != nil {
		uc.logger.Error("CreateBooking: failed to release idempotency key: %v", err)
	}
}
