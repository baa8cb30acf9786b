package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidEventType возвращается при неизвестном типе события
	ErrInvalidEventType = errors.New("invalid event type")

	// ErrMissingDateRange возвращается, когда не задан ни date, ни пара startDate/endDate
	ErrMissingDateRange = errors.New("either date or startDate/endDate is required")
)

// Request модели

// CreateEventRequest запрос на создание события
type CreateEventRequest struct {
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Date            string   `json:"date"`      // "2024-06-05"
	StartTime       string   `json:"startTime"` // "14:00"
	DurationMinutes int      `json:"durationMinutes"`
	Location        *string  `json:"location,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Invitees        []string `json:"invitees,omitempty"`
}

// ToDomainEvent конвертирует запрос в domain модель
// Конец события вычисляется из начала и длительности, цвет - из типа
func (r *CreateEventRequest) ToDomainEvent() (*domain.CalendarEvent, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	start, err := startTime.OnDate(date)
	if err != nil {
		return nil, err
	}

	eventType := domain.EventType(r.Type)
	if !eventType.IsValid() {
		return nil, ErrInvalidEventType
	}

	return &domain.CalendarEvent{
		Title:           r.Title,
		Type:            eventType,
		Date:            date,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(r.DurationMinutes) * time.Minute),
		DurationMinutes: r.DurationMinutes,
		Location:        r.Location,
		Description:     r.Description,
		Invitees:        r.Invitees,
		Color:           eventType.Color(),
	}, nil
}

// UpdateEventRequest запрос на частичное обновление события
// Nil-поля не меняются
type UpdateEventRequest struct {
	Title           *string  `json:"title,omitempty"`
	Type            *string  `json:"type,omitempty"`
	Date            *string  `json:"date,omitempty"`      // "2024-06-05"
	StartTime       *string  `json:"startTime,omitempty"` // "14:00"
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Location        *string  `json:"location,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Invitees        []string `json:"invitees,omitempty"`
}

// GetEventsRequest запрос на получение событий
// Либо Date (один день), либо пара StartDate/EndDate (период, включительно)
type GetEventsRequest struct {
	Date      *string `json:"date,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetEventsRequest) ToDomainFilter() (domain.EventsFilter, error) {
	var filter domain.EventsFilter

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = date
		filter.EndDate = date
		return filter, nil
	}

	if r.StartDate == nil || r.EndDate == nil {
		return filter, ErrMissingDateRange
	}

	startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
	if err != nil {
		return filter, ErrInvalidDate
	}
	endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
	if err != nil {
		return filter, ErrInvalidDate
	}

	filter.StartDate = startDate
	filter.EndDate = endDate
	return filter, nil
}

// Response модели

// EventResponse ответ с данными события
type EventResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Date            string   `json:"date"`      // "2024-06-05"
	StartTime       string   `json:"startTime"` // ISO 8601
	EndTime         string   `json:"endTime"`   // ISO 8601
	DurationMinutes int      `json:"durationMinutes"`
	Location        *string  `json:"location,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Invitees        []string `json:"invitees,omitempty"`
	Color           string   `json:"color"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EventListResponse ответ со списком событий
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// Методы конвертации

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.CalendarEvent) *EventResponse {
	if e == nil {
		return nil
	}

	return &EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Type:            string(e.Type),
		Date:            e.Date.Format(domain.DateFormat),
		StartTime:       e.StartTime.Format(time.RFC3339),
		EndTime:         e.EndTime.Format(time.RFC3339),
		DurationMinutes: e.DurationMinutes,
		Location:        e.Location,
		Description:     e.Description,
		Invitees:        e.Invitees,
		Color:           e.Color,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// FromDomainEventList конвертирует список domain моделей в DTO
func FromDomainEventList(events []*domain.CalendarEvent) *EventListResponse {
	result := make([]EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, *FromDomainEvent(e))
	}
	return &EventListResponse{Events: result}
}
