package save_daily_note

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/notes"
	"github.com/m04kA/SMC-CalendarService/internal/service/notes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoteTooLong        = "заметка слишком длинная"
)

type Handler struct {
	service NoteService
	logger  Logger
}

func NewHandler(service NoteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/notes/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("PUT /notes/%s - Invalid date format", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req models.SaveNoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /notes/%s - Invalid request body: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Save(r.Context(), date, &req); err != nil {
		switch {
		case errors.Is(err, notes.ErrInvalidInput):
			h.logger.Warn("PUT /notes/%s - Invalid input: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgNoteTooLong)

		default:
			h.logger.Error("PUT /notes/%s - Failed to save note: %v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /notes/%s - Note saved successfully", dateStr)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
