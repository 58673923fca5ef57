package get_available_slots

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	StudioID int64      // ID студии
	Date     types.Date // Дата для получения слотов
}

// Response модель ответа со списком слотов дня
type Response struct {
	StudioID       int64
	StudioName     string
	Date           types.Date
	HourlyRate     decimal.Decimal
	Slots          []domain.TimeSlot // Все слоты дня, включая недоступные
	AvailableCount int
}
