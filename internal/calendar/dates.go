package calendar

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// GenerateDates returns windowSizeDays consecutive calendar dates starting with the
// calendar date of now. The caller fixes the timezone by passing now in the session location.
func GenerateDates(now time.Time, windowSizeDays int) []domain.BookableDate {
	if windowSizeDays <= 0 {
		return []domain.BookableDate{}
	}

	today := types.NewDate(now)
	dates := make([]domain.BookableDate, windowSizeDays)
	for i := range dates {
		dates[i] = today.AddDays(i)
	}

	return dates
}

// InWindow reports whether date is within [today, today+windowSizeDays)
func InWindow(date types.Date, now time.Time, windowSizeDays int) bool {
	today := types.NewDate(now)
	if date.Before(today) {
		return false
	}
	return today.DaysUntil(date) < windowSizeDays
}

// IsToday reports whether date is the calendar date of now
func IsToday(date types.Date, now time.Time) bool {
	return date.Equal(types.NewDate(now))
}

// IsPast reports whether date is before the calendar date of now
func IsPast(date types.Date, now time.Time) bool {
	return date.Before(types.NewDate(now))
}
