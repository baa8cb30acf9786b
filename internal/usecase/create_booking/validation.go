package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Контактные поля проверяются по отдельности: обработчик отдает клиенту
// ошибку на уровне конкретного поля формы
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return ErrNameRequired
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return ErrPhoneRequired
	}

	email := strings.TrimSpace(req.ClientEmail)
	if email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailInvalid, err)
	}

	if req.ServiceName == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateSlotBookable проверяет доступность слота по правилам резолвера
// Порядок проверок фиксирован, первая неуспешная побеждает:
// рабочие часы -> обед -> конфликт с событием -> lead time
func validateSlotBookable(
	schedule domain.WorkSchedule,
	date time.Time,
	startTime types.TimeString,
	events []*domain.CalendarEvent,
	now time.Time,
	leadTime time.Duration,
) error {
	instant, err := startTime.OnDate(date)
	if err != nil {
		return fmt.Errorf("%w: failed to compose slot instant: %v", ErrInternal, err)
	}

	if !schedule.IsWithinWorkHours(instant) {
		return ErrOutsideWorkHours
	}

	if schedule.IsLunchTime(instant) {
		return ErrLunchBreak
	}

	// Полуоткрытый интервал [start, end): событие, заканчивающееся ровно
	// в момент слота, его не блокирует
	for _, event := range events {
		if event.Occupies(instant) {
			return ErrSlotNotAvailable
		}
	}

	// Строгое сравнение: слот ровно через leadTime от now бронируется
	if instant.Before(now.Add(leadTime)) {
		return ErrTooLateToBook
	}

	return nil
}
