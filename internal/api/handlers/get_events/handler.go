package get_events

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтра: ожидается date либо пара startDate/endDate"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events?date= | ?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := parseFilter(r)

	result, err := h.service.GetEvents(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("GET /events - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /events - Failed to fetch events: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events - Returned %d events", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseFilter собирает фильтр из query параметров
// Отсутствующие параметры остаются nil, валидация комбинаций - в сервисе
func parseFilter(r *http.Request) *models.GetEventsRequest {
	query := r.URL.Query()

	req := &models.GetEventsRequest{}
	if date := query.Get("date"); date != "" {
		req.Date = &date
	}
	if startDate := query.Get("startDate"); startDate != "" {
		req.StartDate = &startDate
	}
	if endDate := query.Get("endDate"); endDate != "" {
		req.EndDate = &endDate
	}

	return req
}
