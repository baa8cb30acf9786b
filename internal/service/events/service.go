package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/event"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Service сервис для администрирования событий календаря
// Проверка прав вызывающего выполняется на уровне middleware:
// сюда запросы попадают уже аутентифицированными
type Service struct {
	eventRepo EventRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(eventRepo EventRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Create создает событие из админской формы
func (s *Service) Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("CreateEvent: title=%q, type=%s, date=%s, start=%s",
		req.Title, req.Type, req.Date, req.StartTime)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateEvent: validation failed: %v", err)
		return nil, err
	}

	event, err := req.ToDomainEvent()
	if err != nil {
		s.logger.Warn("CreateEvent: failed to convert request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.logger.Error("CreateEvent: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEvent: successfully created event id=%s", created.ID)
	return models.FromDomainEvent(created), nil
}

// Update частично обновляет событие
// Начало, конец и длительность события пересчитываются вместе, чтобы
// инвариант endTime = startTime + duration сохранялся при любом обновлении
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("UpdateEvent: id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("UpdateEvent: event id=%s not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("UpdateEvent: repository error for event id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	update, err := buildEventUpdate(existing, req)
	if err != nil {
		s.logger.Warn("UpdateEvent: invalid update for event id=%s: %v", id, err)
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("UpdateEvent: event id=%s not found during update", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("UpdateEvent: repository error for event id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateEvent: failed to re-read event id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateEvent: successfully updated event id=%s", id)
	return models.FromDomainEvent(updated), nil
}

// Delete удаляет событие
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("DeleteEvent: id=%s", id)

	if id == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("DeleteEvent: event id=%s not found", id)
			return ErrEventNotFound
		}
		s.logger.Error("DeleteEvent: repository error for event id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteEvent: successfully deleted event id=%s", id)
	return nil
}

// GetEvents получает события на дату или за период (границы включительно)
func (s *Service) GetEvents(ctx context.Context, req *models.GetEventsRequest) (*models.EventListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetEvents: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("GetEvents: period=%s to %s",
		filter.StartDate.Format(domain.DateFormat), filter.EndDate.Format(domain.DateFormat))

	events, err := s.eventRepo.GetByDateRange(ctx, filter)
	if err != nil {
		s.logger.Error("GetEvents: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetEvents - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEvents: successfully fetched %d events", len(events))
	return models.FromDomainEventList(events), nil
}

// validateCreateRequest валидирует запрос на создание события
func validateCreateRequest(req *models.CreateEventRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidTimeRange)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	return nil
}

// buildEventUpdate собирает частичное обновление поверх существующего события
// Если меняются дата, время начала или длительность - start/end/duration
// пересчитываются согласованно
func buildEventUpdate(existing *domain.CalendarEvent, req *models.UpdateEventRequest) (domain.EventUpdate, error) {
	var update domain.EventUpdate

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return update, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		update.Title = req.Title
	}

	if req.Type != nil {
		eventType := domain.EventType(*req.Type)
		if !eventType.IsValid() {
			return update, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidEventType)
		}
		update.Type = &eventType
	}

	if req.Location != nil {
		update.Location = req.Location
	}
	if req.Description != nil {
		if len(*req.Description) > domain.MaxDescriptionLength {
			return update, fmt.Errorf("%w: description is too long", ErrInvalidInput)
		}
		update.Description = req.Description
	}
	if req.Invitees != nil {
		update.Invitees = req.Invitees
	}

	// Временные поля пересчитываем только если хотя бы одно из них меняется
	if req.Date == nil && req.StartTime == nil && req.DurationMinutes == nil {
		return update, nil
	}

	date := existing.Date
	if req.Date != nil {
		parsed, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return update, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidDate)
		}
		date = parsed
	}

	startOfDay := types.NewTimeString(existing.StartTime)
	if req.StartTime != nil {
		parsed, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return update, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		startOfDay = parsed
	}

	duration := existing.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	if duration <= 0 {
		return update, fmt.Errorf("%w: duration must be positive", ErrInvalidTimeRange)
	}

	start, err := startOfDay.OnDate(date)
	if err != nil {
		return update, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	update.Date = &date
	update.StartTime = &start
	update.EndTime = &end
	update.DurationMinutes = &duration

	return update, nil
}
