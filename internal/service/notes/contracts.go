package notes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// NoteRepository интерфейс репозитория ежедневных заметок
type NoteRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyNote, error)
	Upsert(ctx context.Context, date time.Time, content string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
