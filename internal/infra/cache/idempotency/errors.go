package idempotency

import "errors"

var (
	// ErrNotFound возвращается, когда ключ идемпотентности еще не использовался
	ErrNotFound = errors.New("idempotency: key not found")

	// ErrPending возвращается, когда ключ зарезервирован запросом, который еще выполняется
	ErrPending = errors.New("idempotency: request in progress")

	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("idempotency: store error")
)

// pendingMarker значение зарезервированного ключа до сохранения бронирования
const pendingMarker = "__pending__"
