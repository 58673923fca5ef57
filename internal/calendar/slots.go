package calendar

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// GenerateSlots returns the fixed daily schedule of hourly slots for date, from
// domain.OpeningHour to domain.LastSlotHour inclusive, in ascending order.
//
// A slot is unavailable only when date is the calendar date of now and the slot
// start is not strictly later than now. Dates before today are not blocked here:
// every slot of a past date comes back available, so callers must reject past
// dates themselves (see IsPast).
//
// Slot instants are built in now's location.
func GenerateSlots(date types.Date, hourlyRate decimal.Decimal, now time.Time) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, domain.SlotsPerDay)
	isToday := IsToday(date, now)

	for hour := domain.OpeningHour; hour <= domain.LastSlotHour; hour++ {
		slotStart := date.At(hour, now.Location())

		slots = append(slots, domain.TimeSlot{
			StartHour: hour,
			Available: !isToday || slotStart.After(now),
			Price:     hourlyRate,
		})
	}

	return slots
}

// FindSlot returns the slot starting at the given hour
func FindSlot(slots []domain.TimeSlot, startHour int) (domain.TimeSlot, bool) {
	for _, slot := range slots {
		if slot.StartHour == startHour {
			return slot, true
		}
	}
	return domain.TimeSlot{}, false
}

// CountAvailable returns the number of available slots
func CountAvailable(slots []domain.TimeSlot) int {
	count := 0
	for _, slot := range slots {
		if slot.Available {
			count++
		}
	}
	return count
}
