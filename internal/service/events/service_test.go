package events

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/event"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

var friday = time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)

type mockEventRepo struct {
	event  *domain.CalendarEvent
	events []*domain.CalendarEvent

	getErr    error
	updateErr error
	deleteErr error

	lastUpdate domain.EventUpdate
	deletedID  string
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	event.ID = "event-1"
	return event, nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.event, nil
}

func (m *mockEventRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error) {
	return m.events, nil
}

func (m *mockEventRepo) GetByDateRange(ctx context.Context, filter domain.EventsFilter) ([]*domain.CalendarEvent, error) {
	return m.events, nil
}

func (m *mockEventRepo) Update(ctx context.Context, id string, update domain.EventUpdate) error {
	m.lastUpdate = update
	return m.updateErr
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func existingEvent() *domain.CalendarEvent {
	start := time.Date(2026, 6, 5, 14, 0, 0, 0, time.UTC)
	return &domain.CalendarEvent{
		ID:              "event-1",
		Title:           "Team sync",
		Type:            domain.TypeEvent,
		Date:            friday,
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		DurationMinutes: 60,
		Color:           domain.TypeEvent.Color(),
	}
}

func TestCreate(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateEventRequest{
		Title:           "Dentist",
		Type:            "appointment",
		Date:            "2026-06-05",
		StartTime:       "15:30",
		DurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, "event-1", resp.ID)
	assert.Equal(t, "appointment", resp.Type)
	assert.Equal(t, "2026-06-05", resp.Date)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, domain.TypeAppointment.Color(), resp.Color)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&mockEventRepo{}, noopLogger{})

	tests := []struct {
		name    string
		req     models.CreateEventRequest
		wantErr error
	}{
		{
			name:    "empty title",
			req:     models.CreateEventRequest{Title: "  ", Type: "event", Date: "2026-06-05", StartTime: "10:00", DurationMinutes: 60},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "title too long",
			req:     models.CreateEventRequest{Title: strings.Repeat("x", domain.MaxTitleLength+1), Type: "event", Date: "2026-06-05", StartTime: "10:00", DurationMinutes: 60},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero duration",
			req:     models.CreateEventRequest{Title: "t", Type: "event", Date: "2026-06-05", StartTime: "10:00"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "unknown type",
			req:     models.CreateEventRequest{Title: "t", Type: "meeting", Date: "2026-06-05", StartTime: "10:00", DurationMinutes: 60},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad date",
			req:     models.CreateEventRequest{Title: "t", Type: "event", Date: "05/06/2026", StartTime: "10:00", DurationMinutes: 60},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdate_RecomputesTimeFields(t *testing.T) {
	repo := &mockEventRepo{event: existingEvent()}
	svc := NewService(repo, noopLogger{})

	// Меняется только длительность: конец пересчитывается от
	// существующего начала
	_, err := svc.Update(context.Background(), "event-1", &models.UpdateEventRequest{
		DurationMinutes: ptr.Ptr(90),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastUpdate.EndTime)
	assert.Equal(t, time.Date(2026, 6, 5, 15, 30, 0, 0, time.UTC), *repo.lastUpdate.EndTime)
	assert.Equal(t, 90, *repo.lastUpdate.DurationMinutes)
	assert.Equal(t, time.Date(2026, 6, 5, 14, 0, 0, 0, time.UTC), *repo.lastUpdate.StartTime)
}

func TestUpdate_TitleOnlyLeavesTimeAlone(t *testing.T) {
	repo := &mockEventRepo{event: existingEvent()}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Update(context.Background(), "event-1", &models.UpdateEventRequest{
		Title: ptr.Ptr("Renamed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", *repo.lastUpdate.Title)
	assert.Nil(t, repo.lastUpdate.StartTime)
	assert.Nil(t, repo.lastUpdate.EndTime)
	assert.Nil(t, repo.lastUpdate.DurationMinutes)
}

func TestUpdate_MoveToAnotherDate(t *testing.T) {
	repo := &mockEventRepo{event: existingEvent()}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Update(context.Background(), "event-1", &models.UpdateEventRequest{
		Date:      ptr.Ptr("2026-06-08"),
		StartTime: ptr.Ptr("09:00"),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastUpdate.StartTime)
	assert.Equal(t, time.Date(2026, 6, 8, 9, 0, 0, 0, time.UTC), *repo.lastUpdate.StartTime)
	// Длительность не менялась - конец сдвигается вместе с началом
	assert.Equal(t, time.Date(2026, 6, 8, 10, 0, 0, 0, time.UTC), *repo.lastUpdate.EndTime)
	assert.Equal(t, 60, *repo.lastUpdate.DurationMinutes)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockEventRepo{getErr: eventRepo.ErrEventNotFound}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Update(context.Background(), "missing", &models.UpdateEventRequest{
		Title: ptr.Ptr("x"),
	})

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDelete(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "event-1"))
	assert.Equal(t, "event-1", repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockEventRepo{deleteErr: eventRepo.ErrEventNotFound}
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestGetEvents_Filters(t *testing.T) {
	repo := &mockEventRepo{events: []*domain.CalendarEvent{existingEvent()}}
	svc := NewService(repo, noopLogger{})

	t.Run("single day", func(t *testing.T) {
		resp, err := svc.GetEvents(context.Background(), &models.GetEventsRequest{
			Date: ptr.Ptr("2026-06-05"),
		})

		require.NoError(t, err)
		require.Len(t, resp.Events, 1)
		assert.Equal(t, "event-1", resp.Events[0].ID)
	})

	t.Run("period", func(t *testing.T) {
		_, err := svc.GetEvents(context.Background(), &models.GetEventsRequest{
			StartDate: ptr.Ptr("2026-06-01"),
			EndDate:   ptr.Ptr("2026-06-07"),
		})

		assert.NoError(t, err)
	})

	t.Run("missing range", func(t *testing.T) {
		_, err := svc.GetEvents(context.Background(), &models.GetEventsRequest{
			StartDate: ptr.Ptr("2026-06-01"),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
