package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	createBooking "github.com/m04kA/SMC-CalendarService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail string  `json:"clientEmail"`
	ServiceName string  `json:"serviceName"`
	Date        string  `json:"date"`      // "2024-06-05"
	StartTime   string  `json:"startTime"` // "14:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	EventID         string  `json:"eventId"`
	Title           string  `json:"title"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		ServiceName: r.ServiceName,
		Date:        date,
		StartTime:   startTime,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		EventID:         resp.EventID,
		Title:           resp.Title,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
