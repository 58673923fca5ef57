package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID      string `json:"userId"`      // Чьи бронирования запрошены
	RequesterID string `json:"requesterId"` // Кто запрашивает (из сессии)
}

// Response модели

// BookingResponse ответ с данными бронирования (экран подтверждения)
type BookingResponse struct {
	BookingID       string  `json:"bookingId"`
	UserID          string  `json:"userId"`
	StudioID        int64   `json:"studioId"`
	Studio          string  `json:"studio"`
	Engineer        string  `json:"engineer"`
	Date            string  `json:"date"`    // "2025-10-15"
	Time            string  `json:"time"`    // "14:00"
	EndTime         string  `json:"endTime"` // "16:00"
	Duration        int     `json:"duration"`
	Subtotal        float64 `json:"subtotal"`
	PlatformFee     float64 `json:"platformFee"`
	TotalPrice      float64 `json:"totalPrice"`
	PaymentMethod   string  `json:"paymentMethod"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	ContactNumber   string  `json:"contactNumber"`
	Status          string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DashboardSummary сводка для дашборда пользователя
type DashboardSummary struct {
	TotalBookings    int     `json:"totalBookings"`
	UpcomingSessions int     `json:"upcomingSessions"`
	PendingPayments  int     `json:"pendingPayments"`
	TotalSpent       float64 `json:"totalSpent"`
}

// UserBookingsResponse история бронирований со сводкой
type UserBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Dashboard DashboardSummary  `json:"dashboard"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.BookingRecord) *BookingResponse {
	if b == nil {
		return nil
	}

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
		Subtotal:        b.Subtotal.InexactFloat64(),
		PlatformFee:     b.PlatformFee.InexactFloat64(),
		TotalPrice:      b.TotalPrice.InexactFloat64(),
		PaymentMethod:   string(b.PaymentMethod),
		SpecialRequests: b.SpecialRequests,
		ContactNumber:   b.ContactNumber,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.BookingRecord) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// SummarizeBookings считает сводку дашборда.
// Предстоящие сессии - с датой не раньше today; потрачено - сумма оплаченных онлайн бронирований.
func SummarizeBookings(bookings []*domain.BookingRecord, today types.Date) *DashboardSummary {
	summary := &DashboardSummary{TotalBookings: len(bookings)}
	spent := decimal.Zero

	for _, b := range bookings {
		if b.IsUpcoming(today) {
			summary.UpcomingSessions++
		}
		if b.Status == domain.StatusPendingPayment {
			summary.PendingPayments++
		}
		if b.IsConfirmed() {
			spent = spent.Add(b.TotalPrice)
		}
	}

	summary.TotalSpent = spent.InexactFloat64()
	return summary
}
