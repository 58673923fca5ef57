package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusConfirmed, StatusFor(PaymentOnline))
	assert.Equal(t, StatusPendingPayment, StatusFor(PaymentStudio))
	assert.Equal(t, StatusPendingPayment, StatusFor(PaymentMethod("")))
}

func TestBookingRecord_EndTime(t *testing.T) {
	b := &BookingRecord{StartTime: "14:00", DurationHours: 2}
	assert.Equal(t, 16, b.EndHour())
	assert.Equal(t, types.TimeString("16:00"), b.EndTime())

	late := &BookingRecord{StartTime: "22:00", DurationHours: 4}
	assert.Equal(t, 26, late.EndHour())
	assert.Equal(t, types.TimeString("02:00"), late.EndTime())
}

func TestBookingRecord_IsUpcoming(t *testing.T) {
	today, _ := types.ParseDate("2026-10-18")
	b := &BookingRecord{Date: today}
	assert.True(t, b.IsUpcoming(today))
	assert.False(t, b.IsUpcoming(today.AddDays(1)))
}

func TestTimeSlot_StartTime(t *testing.T) {
	s := TimeSlot{StartHour: 9}
	assert.Equal(t, types.TimeString("09:00"), s.StartTime())
}

func TestStudio_HasSpecialty(t *testing.T) {
	s := Studio{Specialties: []string{"Hip-Hop", "R&B"}}
	assert.True(t, s.HasSpecialty("R&B"))
	assert.False(t, s.HasSpecialty("Jazz"))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleArtist.IsValid())
	assert.False(t, Role("guest").IsValid())
}
