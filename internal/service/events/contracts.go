package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// EventRepository интерфейс репозитория событий календаря
type EventRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error)
	GetByDateRange(ctx context.Context, filter domain.EventsFilter) ([]*domain.CalendarEvent, error)
	Update(ctx context.Context, id string, update domain.EventUpdate) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
