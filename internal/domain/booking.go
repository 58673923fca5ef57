package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed      BookingStatus = "confirmed"
	StatusPendingPayment BookingStatus = "pending_payment"
)

// PaymentMethod represents how the customer pays for the session
type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "online"
	PaymentStudio PaymentMethod = "studio"
)

// IsValid returns true for a known payment method
func (p PaymentMethod) IsValid() bool {
	return p == PaymentOnline || p == PaymentStudio
}

// StatusFor returns the status a new booking gets for the payment method.
// Online payments are settled at submission, everything else waits for payment at the studio.
func StatusFor(method PaymentMethod) BookingStatus {
	if method == PaymentOnline {
		return StatusConfirmed
	}
	return StatusPendingPayment
}

// BookingRecord represents a submitted studio session booking
type BookingRecord struct {
	BookingID     string
	UserID        string
	StudioID      int64
	StudioName    string
	Engineer      string
	Date          types.Date
	StartTime     types.TimeString
	DurationHours int

	Subtotal    decimal.Decimal
	PlatformFee decimal.Decimal
	TotalPrice  decimal.Decimal

	PaymentMethod   PaymentMethod
	SpecialRequests string
	ContactNumber   string
	Status          BookingStatus

	CreatedAt time.Time
}

// StartHour returns the hour the session starts at
func (b *BookingRecord) StartHour() int {
	return b.StartTime.Hour()
}

// EndHour returns the hour the session ends at; it may be past 24 for sessions running over midnight
func (b *BookingRecord) EndHour() int {
	return b.StartHour() + b.DurationHours
}

// EndTime returns the wall-clock end of the session
func (b *BookingRecord) EndTime() types.TimeString {
	end, err := types.NewTimeStringFromHour(b.EndHour() % 24)
	if err != nil {
		return ""
	}
	return end
}

// IsConfirmed returns true if the booking has been paid online
func (b *BookingRecord) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsUpcoming returns true if the session date is today or later
func (b *BookingRecord) IsUpcoming(today types.Date) bool {
	return !b.Date.Before(today)
}
