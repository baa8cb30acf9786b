package delete_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
)

const (
	msgInvalidInput  = "некорректный идентификатор события"
	msgEventNotFound = "событие не найдено"
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

// Handle DELETE /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	if err := h.service.Delete(r.Context(), eventID); err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("DELETE /events/%s - Event not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("DELETE /events/%s - Invalid input: %v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /events/%s - Failed to delete event: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /events/%s - Event deleted successfully", eventID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
