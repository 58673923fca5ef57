package create_booking

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          string               // ID пользователя из сессии
	StudioID        int64                // ID студии
	Date            types.Date           // Дата сессии
	StartTime       types.TimeString     // Время начала слота (например, "14:00")
	DurationHours   int                  // Длительность: 1, 2, 3, 4 или 8 часов
	PaymentMethod   domain.PaymentMethod // online или studio
	SpecialRequests string               // Пожелания (опционально)
	ContactNumber   string               // Контактный телефон
	IdempotencyKey  string               // Ключ идемпотентности (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking domain.BookingRecord
	Quote   domain.PriceQuote
	// Replayed true, если бронирование уже было создано ранее с тем же ключом идемпотентности
	Replayed bool
}
