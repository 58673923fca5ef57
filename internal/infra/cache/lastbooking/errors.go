package lastbooking

import "errors"

var (
	// ErrNotFound возвращается, когда записи нет или ее не удалось разобрать
	ErrNotFound = errors.New("lastbooking: booking not found")

	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("lastbooking: store error")
)
