package calendar

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func mustTime(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hour, min, 0, 0, ist)
}

func TestGenerateDates_ThirtyConsecutiveDays(t *testing.T) {
	now := mustTime(t, 2026, time.October, 18, 14, 30)

	dates := GenerateDates(now, domain.DefaultWindowDays)

	require.Len(t, dates, 30)
	assert.Equal(t, "2026-10-18", dates[0].String())
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]), "dates must strictly increase")
		assert.Equal(t, 1, dates[i-1].DaysUntil(dates[i]), "dates must be consecutive")
	}
	assert.Equal(t, "2026-11-16", dates[29].String())
}

func TestGenerateDates_CrossesYearBoundary(t *testing.T) {
	now := mustTime(t, 2026, time.December, 30, 23, 59)

	dates := GenerateDates(now, 3)

	require.Len(t, dates, 3)
	assert.Equal(t, "2026-12-30", dates[0].String())
	assert.Equal(t, "2027-01-01", dates[2].String())
}

func TestGenerateDates_UsesCallerLocation(t *testing.T) {
	// 20:00 UTC on the 17th is already the 18th in IST
	now := time.Date(2026, time.October, 17, 20, 0, 0, 0, time.UTC).In(ist)

	dates := GenerateDates(now, 1)

	assert.Equal(t, "2026-10-18", dates[0].String())
}

func TestGenerateDates_EmptyWindow(t *testing.T) {
	assert.Empty(t, GenerateDates(time.Now(), 0))
}

func TestGenerateSlots_TodayCutoff(t *testing.T) {
	now := mustTime(t, 2026, time.October, 18, 14, 30)
	today := types.NewDate(now)
	rate := decimal.NewFromInt(1800)

	slots := GenerateSlots(today, rate, now)

	require.Len(t, slots, domain.SlotsPerDay)
	for i, slot := range slots {
		assert.Equal(t, domain.OpeningHour+i, slot.StartHour)
		assert.True(t, slot.Price.Equal(rate))
		if slot.StartHour <= 14 {
			assert.False(t, slot.Available, "slot %d must be unavailable", slot.StartHour)
		} else {
			assert.True(t, slot.Available, "slot %d must be available", slot.StartHour)
		}
	}
	assert.Equal(t, 8, CountAvailable(slots))
}

func TestGenerateSlots_ExactlyOnTheHour(t *testing.T) {
	now := mustTime(t, 2026, time.October, 18, 15, 0)

	slots := GenerateSlots(types.NewDate(now), decimal.NewFromInt(1500), now)

	slot, ok := FindSlot(slots, 15)
	require.True(t, ok)
	assert.False(t, slot.Available, "a slot starting now is not strictly in the future")

	slot, ok = FindSlot(slots, 16)
	require.True(t, ok)
	assert.True(t, slot.Available)
}

func TestGenerateSlots_FutureDateAllAvailable(t *testing.T) {
	now := mustTime(t, 2026, time.October, 18, 23, 0)
	future := types.NewDate(now).AddDays(5)

	slots := GenerateSlots(future, decimal.NewFromInt(2200), now)

	require.Len(t, slots, 14)
	assert.Equal(t, 14, CountAvailable(slots))
	assert.Equal(t, 9, slots[0].StartHour)
	assert.Equal(t, 22, slots[13].StartHour)
}

func TestGenerateSlots_PastDateIsNotBlocked(t *testing.T) {
	now := mustTime(t, 2026, time.October, 18, 12, 0)
	yesterday := types.NewDate(now).AddDays(-1)

	slots := GenerateSlots(yesterday, decimal.NewFromInt(1800), now)

	assert.Equal(t, 14, CountAvailable(slots))
	assert.True(t, IsPast(yesterday, now))
}

func TestGenerateSlots_AfterClosing(t *testing.T) {
	now := mustTime(t, 2026, time.October, 18, 22, 1)

	slots := GenerateSlots(types.NewDate(now), decimal.NewFromInt(1800), now)

	assert.Equal(t, 0, CountAvailable(slots))
}

func TestFindSlot_Missing(t *testing.T) {
	now := mustTime(t, 2026, time.October, 18, 8, 0)
	slots := GenerateSlots(types.NewDate(now), decimal.NewFromInt(1800), now)

	_, ok := FindSlot(slots, 8)
	assert.False(t, ok)
	_, ok = FindSlot(slots, 23)
	assert.False(t, ok)
}

func TestInWindow(t *testing.T) {
	now := mustTime(t, 2026, time.October, 18, 10, 0)
	today := types.NewDate(now)

	assert.True(t, InWindow(today, now, 30))
	assert.True(t, InWindow(today.AddDays(29), now, 30))
	assert.False(t, InWindow(today.AddDays(30), now, 30))
	assert.False(t, InWindow(today.AddDays(-1), now, 30))
}
