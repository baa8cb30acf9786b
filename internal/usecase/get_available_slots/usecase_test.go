package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

type mockEventRepo struct {
	events []*domain.CalendarEvent
	err    error
}

func (m *mockEventRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error) {
	return m.events, m.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo EventRepository, now time.Time) *UseCase {
	uc := NewUseCase(repo, domain.DefaultWorkSchedule(), 60, 24, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func slotByStart(t *testing.T, slots []Slot, start types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == start {
			return s
		}
	}
	t.Fatalf("slot %s not found", start)
	return Slot{}
}

func TestExecute_FullDay(t *testing.T) {
	repo := &mockEventRepo{
		events: []*domain.CalendarEvent{fixedEvent(t, friday, "14:00", "15:00")},
	}
	uc := newTestUseCase(repo, farFuture)

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 8)

	// 12:00 - обед
	lunch := slotByStart(t, resp.Slots, "12:00")
	assert.False(t, lunch.Bookable)
	assert.Equal(t, ReasonLunchBreak, lunch.Reason)

	// 14:00 занят событием
	booked := slotByStart(t, resp.Slots, "14:00")
	assert.False(t, booked.Bookable)
	assert.Equal(t, ReasonBooked, booked.Reason)

	// 15:00 свободен: событие закончилось ровно в момент слота
	free := slotByStart(t, resp.Slots, "15:00")
	assert.True(t, free.Bookable)
	assert.Empty(t, free.Reason)

	// Остальные слоты доступны
	bookable := 0
	for _, s := range resp.Slots {
		if s.Bookable {
			assert.Equal(t, 60, s.DurationMinutes)
			bookable++
		}
	}
	assert.Equal(t, 6, bookable)
}

func TestExecute_NonWorkDay(t *testing.T) {
	repo := &mockEventRepo{err: errors.New("must not be called")}
	uc := newTestUseCase(repo, farFuture)
	saturday := friday.AddDate(0, 0, 1)

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_LeadTimeBlocksNearSlots(t *testing.T) {
	uc := newTestUseCase(&mockEventRepo{}, time.Date(2026, 6, 4, 13, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})

	require.NoError(t, err)

	// now + 24h = 2026-06-05 13:30: слоты до 13:30 заблокированы lead time
	early := slotByStart(t, resp.Slots, "13:00")
	assert.False(t, early.Bookable)
	assert.Equal(t, ReasonLeadTime, early.Reason)

	late := slotByStart(t, resp.Slots, "14:00")
	assert.True(t, late.Bookable)
}

func TestExecute_ValidationError(t *testing.T) {
	uc := newTestUseCase(&mockEventRepo{}, farFuture)

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockEventRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, farFuture)

	_, err := uc.Execute(context.Background(), &Request{Date: friday})

	assert.ErrorIs(t, err, ErrInternal)
}
