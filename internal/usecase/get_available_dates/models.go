package get_available_dates

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request модель запроса окна дат
type Request struct {
	StudioID int64 // ID студии
	Days     int   // Размер окна в днях; 0 - значение из конфигурации
}

// Response модель ответа с окном дат
type Response struct {
	StudioID int64
	Today    types.Date
	Dates    []domain.BookableDate
}
