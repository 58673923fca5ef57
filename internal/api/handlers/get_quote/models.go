package get_quote

import (
	quoteBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/quote_booking"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	StudioID        int64   `json:"studioId"`
	Studio          string  `json:"studio"`
	HourlyRate      float64 `json:"hourlyRate"`
	Duration        int     `json:"duration"`
	Subtotal        float64 `json:"subtotal"`
	PlatformFeeRate float64 `json:"platformFeeRate"`
	PlatformFee     float64 `json:"platformFee"`
	Total           float64 `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	q := resp.Quote
	return &QuoteResponse{
		StudioID:        resp.StudioID,
		Studio:          resp.StudioName,
		HourlyRate:      q.HourlyRate.InexactFloat64(),
		Duration:        q.DurationHours,
		Subtotal:        q.Subtotal.InexactFloat64(),
		PlatformFeeRate: q.PlatformFeeRate.InexactFloat64(),
		PlatformFee:     q.PlatformFee.InexactFloat64(),
		Total:           q.Total.InexactFloat64(),
	}
}
