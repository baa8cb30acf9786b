package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// 2026-06-05 - пятница
var friday = time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

// farFuture достаточно далеко в прошлом, чтобы lead time никогда не срабатывал
var farFuture = friday.AddDate(-1, 0, 0)

func validRequest() *Request {
	return &Request{
		ClientName:  "Jane Doe",
		ClientPhone: "+44 7700 900123",
		ClientEmail: "jane@example.com",
		ServiceName: "Virtual Assistant",
		Date:        friday,
		StartTime:   "14:00",
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "valid request", mutate: func(r *Request) {}},
		{name: "missing name", mutate: func(r *Request) { r.ClientName = "  " }, wantErr: ErrNameRequired},
		{name: "missing phone", mutate: func(r *Request) { r.ClientPhone = "" }, wantErr: ErrPhoneRequired},
		{name: "missing email", mutate: func(r *Request) { r.ClientEmail = "" }, wantErr: ErrEmailRequired},
		{name: "invalid email", mutate: func(r *Request) { r.ClientEmail = "not-an-email" }, wantErr: ErrEmailInvalid},
		{name: "email without domain", mutate: func(r *Request) { r.ClientEmail = "jane@" }, wantErr: ErrEmailInvalid},
		{name: "missing service", mutate: func(r *Request) { r.ServiceName = "" }, wantErr: ErrInvalidInput},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: ErrInvalidInput},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "2pm" }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func bookedEvent(t *testing.T, from, to string) *domain.CalendarEvent {
	t.Helper()

	start, err := types.TimeString(from).OnDate(friday)
	require.NoError(t, err)
	end, err := types.TimeString(to).OnDate(friday)
	require.NoError(t, err)

	return &domain.CalendarEvent{
		Date:      friday,
		StartTime: start,
		EndTime:   end,
	}
}

func TestValidateSlotBookable(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()
	leadTime := 24 * time.Hour

	tests := []struct {
		name      string
		startTime types.TimeString
		events    []*domain.CalendarEvent
		now       time.Time
		wantErr   error
	}{
		{name: "free slot", startTime: "14:00", now: farFuture},
		{name: "before opening", startTime: "09:00", now: farFuture, wantErr: ErrOutsideWorkHours},
		{name: "at closing", startTime: "18:00", now: farFuture, wantErr: ErrOutsideWorkHours},
		{name: "lunch break", startTime: "12:00", now: farFuture, wantErr: ErrLunchBreak},
		{name: "after lunch window", startTime: "12:30", now: farFuture},
		{
			name:      "slot taken",
			startTime: "14:00",
			events:    []*domain.CalendarEvent{bookedEvent(t, "14:00", "15:00")},
			now:       farFuture,
			wantErr:   ErrSlotNotAvailable,
		},
		{
			name:      "event ends at slot start",
			startTime: "15:00",
			events:    []*domain.CalendarEvent{bookedEvent(t, "14:00", "15:00")},
			now:       farFuture,
		},
		{
			name:      "exactly lead time away",
			startTime: "14:00",
			now:       time.Date(2026, 6, 4, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "inside lead time window",
			startTime: "14:00",
			now:       time.Date(2026, 6, 4, 14, 1, 0, 0, time.UTC),
			wantErr:   ErrTooLateToBook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlotBookable(schedule, friday, tt.startTime, tt.events, tt.now, leadTime)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
