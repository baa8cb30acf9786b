package get_daily_note

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/service/notes/models"
)

type NoteService interface {
	Get(ctx context.Context, date time.Time) (*models.NoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
