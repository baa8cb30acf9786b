package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// UseCase use case для бронирования слота клиентом
type UseCase struct {
	eventRepo    EventRepository
	txManager    TransactionManager
	schedule     domain.WorkSchedule
	services     []domain.Service
	leadTime     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	txManager TransactionManager,
	schedule domain.WorkSchedule,
	services []domain.Service,
	leadTimeHours int,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:    eventRepo,
		txManager:    txManager,
		schedule:     schedule,
		services:     services,
		leadTime:     time.Duration(leadTimeHours) * time.Hour,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования
// Проверка доступности слота и запись события выполняются в SERIALIZABLE
// транзакции: два одновременных клиента не смогут забронировать один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%q, date=%s, time=%s",
		req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных (контактные поля, формат даты и времени)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Ищем услугу в каталоге
	service := domain.FindService(uc.services, req.ServiceName)
	if service == nil {
		uc.logger.Warn("CreateBooking: service %q not found", req.ServiceName)
		return nil, ErrServiceNotFound
	}

	// Переменная для хранения результата
	var result *domain.CalendarEvent

	// 4. Выполняем проверку доступности и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем все события на эту дату с блокировкой (FOR UPDATE)
		events, err := uc.eventRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get events: %v", err)
			return fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
		}

		// 4.2. Проверяем доступность слота
		if err := validateSlotBookable(uc.schedule, req.Date, req.StartTime, events, now, uc.leadTime); err != nil {
			uc.logger.Warn("CreateBooking: slot %s %s not bookable: %v",
				req.Date.Format(domain.DateFormat), req.StartTime, err)
			return err
		}

		// 4.3. Собираем событие-бронирование
		event, err := buildBookingEvent(req, service)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to build event: %v", err)
			return fmt.Errorf("%w: failed to build event: %v", ErrInternal, err)
		}

		// 4.4. Сохраняем событие; бронирование считается созданным только
		// после подтверждения хранилища
		created, err := uc.eventRepo.Create(txCtx, event)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create event: %v", err)
			return fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking event id=%s", result.ID)

	return &Response{
		EventID:         result.ID,
		Title:           result.Title,
		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		Date:            result.Date,
		StartTime:       types.NewTimeString(result.StartTime),
		DurationMinutes: result.DurationMinutes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// buildBookingEvent собирает событие календаря из запроса на бронирование
// Начало = момент слота, конец = начало + длительность услуги
func buildBookingEvent(req *Request, service *domain.Service) (*domain.CalendarEvent, error) {
	startTime, err := req.StartTime.OnDate(req.Date)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Booked by %s (%s, %s)", req.ClientName, req.ClientEmail, req.ClientPhone)
	if req.Notes != nil && *req.Notes != "" {
		description += "\n" + *req.Notes
	}

	return &domain.CalendarEvent{
		Title:           fmt.Sprintf("%s - %s", service.Name, req.ClientName),
		Type:            domain.TypeAppointment,
		Date:            req.Date,
		StartTime:       startTime,
		EndTime:         startTime.Add(time.Duration(service.DurationMinutes) * time.Minute),
		DurationMinutes: service.DurationMinutes,
		Description:     &description,
		Invitees:        []string{req.ClientEmail},
		Color:           domain.TypeAppointment.Color(),
	}, nil
}
