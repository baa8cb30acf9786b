package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// EventRepository интерфейс репозитория событий календаря
type EventRepository interface {
	// GetByDate получает все события на конкретную дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Доступность слота зависит от "сейчас" (правило lead time), поэтому
// текущее время всегда передается в резолвер явно и никогда не кэшируется
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
