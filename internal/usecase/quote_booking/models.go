package quote_booking

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// Request модель запроса расчета стоимости
type Request struct {
	StudioID      int64
	DurationHours int
}

// Response модель ответа с расчетом стоимости
type Response struct {
	StudioID   int64
	StudioName string
	Quote      domain.PriceQuote
}
