package payments

import "errors"

var (
	// ErrPaymentFailed возвращается, когда обработка отправки завершилась ошибкой
	ErrPaymentFailed = errors.New("payments: submission failed")

	// ErrCancelled возвращается, когда запрос отменен до завершения обработки
	ErrCancelled = errors.New("payments: submission cancelled")
)
