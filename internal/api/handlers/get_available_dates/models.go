package get_available_dates

import (
	getAvailableDates "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	StudioID int64    `json:"studioId"`
	Today    string   `json:"today"`
	Dates    []string `json:"dates"` // "2025-10-15", по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.String()
	}

	return &AvailableDatesResponse{
		StudioID: resp.StudioID,
		Today:    resp.Today.String(),
		Dates:    dates,
	}
}
