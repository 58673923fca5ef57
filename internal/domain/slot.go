package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// BookableDate a calendar date that can be picked for a session
type BookableDate = types.Date

// TimeSlot represents a one-hour bookable interval of a studio day
type TimeSlot struct {
	StartHour int
	Available bool
	Price     decimal.Decimal
}

// StartTime returns the slot start as HH:MM
func (s *TimeSlot) StartTime() types.TimeString {
	ts, err := types.NewTimeStringFromHour(s.StartHour)
	if err != nil {
		return ""
	}
	return ts
}

// PriceQuote represents the priced total of a session
type PriceQuote struct {
	HourlyRate      decimal.Decimal
	DurationHours   int
	Subtotal        decimal.Decimal
	PlatformFeeRate decimal.Decimal
	PlatformFee     decimal.Decimal
	Total           decimal.Decimal
}
