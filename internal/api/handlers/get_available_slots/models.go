package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot модель временного слота
// Заблокированные слоты не скрываются, а помечаются причиной
type Slot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Bookable        bool   `json:"bookable"`
	Reason          string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Bookable:        slot.Bookable,
			Reason:          string(slot.Reason),
		}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date: date,
	}, nil
}
