package create_booking

import "errors"

var (
	// ErrValidation возвращается, когда не заполнено или некорректно обязательное поле
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrStudioNotFound возвращается, когда студия не найдена
	ErrStudioNotFound = errors.New("create_booking: studio not found")

	// ErrInvalidDate возвращается для даты раньше сегодняшней
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним слотом дня
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже начался
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSubmissionFailed возвращается при сбое шага отправки; бронирование не сохраняется
	ErrSubmissionFailed = errors.New("create_booking: submission failed")

	// ErrRequestInProgress возвращается, когда запрос с тем же ключом идемпотентности еще выполняется
	ErrRequestInProgress = errors.New("create_booking: request with the same idempotency key is in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
