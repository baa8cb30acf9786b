package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CalendarService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNameRequired       = "имя обязательно"
	msgPhoneRequired      = "телефон обязателен"
	msgEmailRequired      = "email обязателен"
	msgEmailInvalid       = "некорректный email"
	msgServiceNotFound    = "услуга не найдена"
	msgOutsideWorkHours   = "слот вне рабочих часов"
	msgLunchBreak         = "слот попадает на обеденный перерыв"
	msgSlotNotAvailable   = "выбранный временной слот занят"
	msgTooLateToBook      = "слот должен быть забронирован заранее"
)

// FieldError ошибка валидации конкретного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Ошибки валидации контактных полей отдаем с указанием поля формы,
		// записи в хранилище при них не было
		switch {
		case errors.Is(err, createBooking.ErrNameRequired):
			h.respondFieldError(w, "clientName", msgNameRequired)

		case errors.Is(err, createBooking.ErrPhoneRequired):
			h.respondFieldError(w, "clientPhone", msgPhoneRequired)

		case errors.Is(err, createBooking.ErrEmailRequired):
			h.respondFieldError(w, "clientEmail", msgEmailRequired)

		case errors.Is(err, createBooking.ErrEmailInvalid):
			h.respondFieldError(w, "clientEmail", msgEmailInvalid)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service=%q", req.ServiceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrOutsideWorkHours):
			h.logger.Warn("POST /bookings - Outside work hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkHours)

		case errors.Is(err, createBooking.ErrLunchBreak):
			h.logger.Warn("POST /bookings - Lunch break: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgLunchBreak)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: event_id=%s, date=%s, time=%s",
		result.EventID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

func (h *Handler) respondFieldError(w http.ResponseWriter, field, message string) {
	h.logger.Warn("POST /bookings - Validation failed: field=%s", field)
	handlers.RespondJSON(w, http.StatusBadRequest, FieldError{
		Field:   field,
		Message: message,
	})
}
