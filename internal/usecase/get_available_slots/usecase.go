package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case для получения слотов дня с отметкой доступности
type UseCase struct {
	eventRepo          EventRepository
	schedule           domain.WorkSchedule
	granularityMinutes int
	leadTime           time.Duration
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	schedule domain.WorkSchedule,
	granularityMinutes int,
	leadTimeHours int,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:          eventRepo,
		schedule:           schedule,
		granularityMinutes: granularityMinutes,
		leadTime:           time.Duration(leadTimeHours) * time.Hour,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время: доступность зависит от "сейчас" и
	// вычисляется заново на каждый запрос
	now := uc.timeProvider.Now()

	// 3. Нерабочий день - слотов нет
	if !uc.schedule.IsWorkDay(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is not a work day", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:  req.Date,
			Slots: []Slot{},
		}, nil
	}

	// 4. Получаем все события на эту дату
	events, err := uc.eventRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get events: %v", err)
		return nil, fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
	}

	// 5. Генерируем номинальные слоты дня
	timeSlots, err := generateDaySlots(uc.schedule, req.Date, uc.granularityMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 6. Резолвим доступность каждого слота
	slots := make([]Slot, 0, len(timeSlots))
	bookable := 0

	for _, slotStart := range timeSlots {
		ok, reason, err := resolveSlot(uc.schedule, req.Date, slotStart, events, now, uc.leadTime)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to resolve slot %s: %v", slotStart, err)
			return nil, fmt.Errorf("%w: failed to resolve slot: %v", ErrInternal, err)
		}

		if ok {
			bookable++
		}

		slots = append(slots, Slot{
			StartTime:       slotStart,
			DurationMinutes: uc.granularityMinutes,
			Bookable:        ok,
			Reason:          reason,
		})
	}

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d, bookable=%d",
		req.Date.Format(domain.DateFormat), len(slots), bookable)

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
