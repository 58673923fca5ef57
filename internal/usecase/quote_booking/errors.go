package quote_booking

import "errors"

var (
	// ErrStudioNotFound возвращается, когда студия не найдена
	ErrStudioNotFound = errors.New("quote_booking: studio not found")

	// ErrInvalidDuration возвращается для длительности вне предлагаемого набора
	ErrInvalidDuration = errors.New("quote_booking: duration is not offered")

	// ErrInvalidRate возвращается, когда у студии неположительная ставка
	ErrInvalidRate = errors.New("quote_booking: invalid hourly rate")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
