package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами дня
// Содержит ВСЕ номинальные слоты рабочего дня: занятые помечены причиной,
// а не выкинуты из списка - UI показывает их заблокированными
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Слоты дня в порядке времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
	Bookable        bool             // Доступен ли слот для бронирования
	Reason          BlockReason      // Причина блокировки (пустая для доступных)
}

// BlockReason причина, по которой слот недоступен
type BlockReason string

const (
	ReasonOutsideWorkHours BlockReason = "outside_work_hours"
	ReasonLunchBreak       BlockReason = "lunch_break"
	ReasonBooked           BlockReason = "booked"
	ReasonLeadTime         BlockReason = "lead_time"
)
