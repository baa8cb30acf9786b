package save_daily_note

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/service/notes/models"
)

type NoteService interface {
	Save(ctx context.Context, date time.Time, req *models.SaveNoteRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
