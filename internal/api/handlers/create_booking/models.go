package create_booking

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StudioID        int64  `json:"studioId"`
	Date            string `json:"date"` // "2025-10-15"
	Time            string `json:"time"` // "14:00"
	Duration        int    `json:"duration"`
	PaymentMethod   string `json:"paymentMethod"` // online | studio
	SpecialRequests string `json:"specialRequests,omitempty"`
	ContactNumber   string `json:"contactNumber"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID       string  `json:"bookingId"`
	UserID          string  `json:"userId"`
	StudioID        int64   `json:"studioId"`
	Studio          string  `json:"studio"`
	Engineer        string  `json:"engineer"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	EndTime         string  `json:"endTime"`
	Duration        int     `json:"duration"`
	HourlyRate      float64 `json:"hourlyRate"`
	Subtotal        float64 `json:"subtotal"`
	PlatformFee     float64 `json:"platformFee"`
	TotalPrice      float64 `json:"totalPrice"`
	PaymentMethod   string  `json:"paymentMethod"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	ContactNumber   string  `json:"contactNumber"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустые дата и время передаются как есть: их отсутствие проверяет use case.
func (r *CreateBookingRequest) ToUseCaseRequest(userID, idempotencyKey string) (*createBooking.Request, error) {
	var date types.Date
	if r.Date != "" {
		parsed, err := types.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createBooking.Request{
		UserID:          userID,
		StudioID:        r.StudioID,
		Date:            date,
		StartTime:       types.TimeString(r.Time),
		DurationHours:   r.Duration,
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		SpecialRequests: r.SpecialRequests,
		ContactNumber:   r.ContactNumber,
		IdempotencyKey:  idempotencyKey,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking
	return &BookingResponse{
		BookingID:       b.BookingID,
		UserID:          b.UserID,
		StudioID:        b.StudioID,
		Studio:          b.StudioName,
		Engineer:        b.Engineer,
		Date:            b.Date.String(),
		Time:            b.StartTime.String(),
		EndTime:         b.EndTime().String(),
		Duration:        b.DurationHours,
		HourlyRate:      resp.Quote.HourlyRate.InexactFloat64(),
		Subtotal:        b.Subtotal.InexactFloat64(),
		PlatformFee:     b.PlatformFee.InexactFloat64(),
		TotalPrice:      b.TotalPrice.InexactFloat64(),
		PaymentMethod:   string(b.PaymentMethod),
		SpecialRequests: b.SpecialRequests,
		ContactNumber:   b.ContactNumber,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
