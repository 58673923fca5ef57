package get_available_slots

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StudioID       int64           `json:"studioId"`
	Studio         string          `json:"studio"`
	Date           string          `json:"date"`
	HourlyRate     float64         `json:"hourlyRate"`
	AvailableCount int             `json:"availableCount"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string  `json:"time"` // "14:00"
	Hour      int     `json:"hour"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i := range resp.Slots {
		slots[i] = fromDomainSlot(&resp.Slots[i])
	}

	return &AvailableSlotsResponse{
		StudioID:       resp.StudioID,
		Studio:         resp.StudioName,
		Date:           resp.Date.String(),
		HourlyRate:     resp.HourlyRate.InexactFloat64(),
		AvailableCount: resp.AvailableCount,
		Slots:          slots,
	}
}

func fromDomainSlot(slot *domain.TimeSlot) AvailableSlot {
	return AvailableSlot{
		Time:      slot.StartTime().String(),
		Hour:      slot.StartHour,
		Available: slot.Available,
		Price:     slot.Price.InexactFloat64(),
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(studioID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StudioID: studioID,
		Date:     date,
	}, nil
}
