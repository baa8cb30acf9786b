package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// generateDaySlots генерирует список всех номинальных слотов на день
// Слоты идут с шагом granularityMinutes от открытия до закрытия; последний
// слот строго раньше времени закрытия, само время закрытия не включается.
// Обед, конфликты и lead time здесь НЕ фильтруются - это работа резолвера:
// UI показывает полный список и помечает недоступные слоты, а не прячет их
func generateDaySlots(schedule domain.WorkSchedule, date time.Time, granularityMinutes int) ([]types.TimeString, error) {
	if !schedule.IsWorkDay(date) {
		return []types.TimeString{}, nil
	}

	openMinutes := schedule.OpenHour * 60
	closeMinutes := schedule.CloseHour * 60

	slots := make([]types.TimeString, 0, (closeMinutes-openMinutes)/granularityMinutes)

	for m := openMinutes; m < closeMinutes; m += granularityMinutes {
		slot, err := types.NewTimeStringFromParts(m/60, m%60)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// resolveSlot решает, доступен ли слот для бронирования
// Проверки применяются в фиксированном порядке, первая неуспешная побеждает:
//  1. рабочие часы
//  2. обеденный перерыв
//  3. конфликт с существующим событием: интервал события [start, end)
//     содержит момент слота; событие, заканчивающееся ровно в момент слота,
//     слот не блокирует, начинающееся ровно в этот момент - блокирует
//  4. lead time: слот раньше, чем now + leadTime, недоступен (строгое
//     сравнение: слот ровно через leadTime от now забронировать можно)
//
// Чистая функция своих аргументов: при фиксированном now результат детерминирован
func resolveSlot(
	schedule domain.WorkSchedule,
	date time.Time,
	slot types.TimeString,
	events []*domain.CalendarEvent,
	now time.Time,
	leadTime time.Duration,
) (bool, BlockReason, error) {
	instant, err := slot.OnDate(date)
	if err != nil {
		return false, "", err
	}

	if !schedule.IsWithinWorkHours(instant) {
		return false, ReasonOutsideWorkHours, nil
	}

	if schedule.IsLunchTime(instant) {
		return false, ReasonLunchBreak, nil
	}

	for _, event := range events {
		if event.Occupies(instant) {
			return false, ReasonBooked, nil
		}
	}

	if instant.Before(now.Add(leadTime)) {
		return false, ReasonLeadTime, nil
	}

	return true, "", nil
}
