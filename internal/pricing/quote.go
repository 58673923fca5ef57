package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrInvalidDuration возвращается для длительности вне domain.AllowedDurations
	ErrInvalidDuration = errors.New("pricing: duration is not offered")

	// ErrInvalidRate возвращается для неположительной почасовой ставки
	ErrInvalidRate = errors.New("pricing: hourly rate must be positive")
)

// Quote считает стоимость сессии.
//
// subtotal = hourlyRate * durationHours
// platformFee = subtotal * 5%, округление до целой денежной единицы, половина вверх
// total = subtotal + platformFee
//
// Проверка входных данных на стороне вызывающего (см. Validate).
func Quote(hourlyRate decimal.Decimal, durationHours int) domain.PriceQuote {
	subtotal := hourlyRate.Mul(decimal.NewFromInt(int64(durationHours)))
	fee := roundHalfUp(subtotal.Mul(domain.PlatformFeeRate))

	return domain.PriceQuote{
		HourlyRate:      hourlyRate,
		DurationHours:   durationHours,
		Subtotal:        subtotal,
		PlatformFeeRate: domain.PlatformFeeRate,
		PlatformFee:     fee,
		Total:           subtotal.Add(fee),
	}
}

// Validate проверяет ставку и длительность
func Validate(hourlyRate decimal.Decimal, durationHours int) error {
	if !hourlyRate.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidRate, hourlyRate.String())
	}
	if !IsAllowedDuration(durationHours) {
		return fmt.Errorf("%w: %d hours, allowed %v", ErrInvalidDuration, durationHours, domain.AllowedDurations)
	}
	return nil
}

// IsAllowedDuration проверяет, что длительность входит в предлагаемый набор
func IsAllowedDuration(durationHours int) bool {
	for _, d := range domain.AllowedDurations {
		if d == durationHours {
			return true
		}
	}
	return false
}

// roundHalfUp округляет до целого, x.5 всегда вверх (в т.ч. для отрицательных: -2.5 -> -2)
func roundHalfUp(v decimal.Decimal) decimal.Decimal {
	return v.Add(decimal.NewFromFloat(0.5)).Floor()
}
