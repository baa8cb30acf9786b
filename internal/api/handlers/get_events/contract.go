package get_events

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

type EventService interface {
	GetEvents(ctx context.Context, req *models.GetEventsRequest) (*models.EventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
