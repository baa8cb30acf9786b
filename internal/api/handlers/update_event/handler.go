package update_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные события"
	msgInvalidTimeRange   = "некорректный временной интервал события"
	msgEventNotFound      = "событие не найдено"
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

// Handle PATCH /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	var req models.UpdateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /events/%s - Invalid request body: %v", eventID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := h.service.Update(r.Context(), eventID, &req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("PATCH /events/%s - Event not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, events.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /events/%s - Invalid time range: %v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("PATCH /events/%s - Invalid input: %v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /events/%s - Failed to update event: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /events/%s - Event updated successfully", eventID)
	handlers.RespondJSON(w, http.StatusOK, event)
}
