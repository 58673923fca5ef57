package lastbooking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

const keyPrefix = "lastBooking:"

// Key возвращает ключ записи последнего бронирования пользователя
func Key(userID string) string {
	return keyPrefix + userID
}

// record сериализованное представление BookingRecord; суммы хранятся строками decimal
type record struct {
	BookingID       string          `json:"bookingId"`
	UserID          string          `json:"userId"`
	StudioID        int64           `json:"studioId"`
	Studio          string          `json:"studio"`
	Engineer        string          `json:"engineer"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	Duration        int             `json:"duration"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	PlatformFee     decimal.Decimal `json:"platformFee"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	PaymentMethod   string          `json:"paymentMethod"`
	SpecialRequests string          `json:"specialRequests"`
	ContactNumber   string          `json:"contactNumber"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func encode(b *domain.BookingRecord) ([]byte, error) {
	return json.Marshal(record{
		BookingID:       b.BookingID,
		UserID:          b.UserID,
		StudioID:        b.StudioID,
		Studio:          b.StudioName,
		Engineer:        b.Engineer,
		Date:            b.Date.String(),
		Time:            b.StartTime.String(),
		Duration:        b.DurationHours,
		Subtotal:        b.Subtotal,
		PlatformFee:     b.PlatformFee,
		TotalPrice:      b.TotalPrice,
		PaymentMethod:   string(b.PaymentMethod),
		SpecialRequests: b.SpecialRequests,
		ContactNumber:   b.ContactNumber,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	})
}

// decode разбирает запись; любая ошибка формата означает ErrNotFound
func decode(data []byte) (*domain.BookingRecord, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: unparsable record: %v", ErrNotFound, err)
	}
	if r.BookingID == "" {
		return nil, fmt.Errorf("%w: record without bookingId", ErrNotFound)
	}

	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	start, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	return &domain.BookingRecord{
		BookingID:       r.BookingID,
		UserID:          r.UserID,
		StudioID:        r.StudioID,
		StudioName:      r.Studio,
		Engineer:        r.Engineer,
		Date:            date,
		StartTime:       start,
		DurationHours:   r.Duration,
		Subtotal:        r.Subtotal,
		PlatformFee:     r.PlatformFee,
		TotalPrice:      r.TotalPrice,
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		SpecialRequests: r.SpecialRequests,
		ContactNumber:   r.ContactNumber,
		Status:          domain.BookingStatus(r.Status),
		CreatedAt:       r.CreatedAt,
	}, nil
}
