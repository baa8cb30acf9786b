package get_available_slots

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

// farFuture достаточно далеко, чтобы lead time никогда не срабатывал
var farFuture = friday.AddDate(-1, 0, 0)

func fixedEvent(t *testing.T, date time.Time, from, to string) *domain.CalendarEvent {
	t.Helper()

	start, err := types.TimeString(from).OnDate(date)
	require.NoError(t, err)
	end, err := types.TimeString(to).OnDate(date)
	require.NoError(t, err)

	return &domain.CalendarEvent{
		Title:     "busy",
		Type:      domain.TypeEvent,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestGenerateDaySlots_DefaultSchedule(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()

	slots, err := generateDaySlots(schedule, friday, 60)

	require.NoError(t, err)
	// 10:00 .. 17:00, время закрытия не включается
	require.Len(t, slots, 8)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
}

func TestGenerateDaySlots_HalfHourGranularity(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()

	slots, err := generateDaySlots(schedule, friday, 30)

	require.NoError(t, err)
	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("10:30"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
}

func TestGenerateDaySlots_NonWorkDay(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()
	saturday := friday.AddDate(0, 0, 1)

	slots, err := generateDaySlots(schedule, saturday, 60)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveSlot_Bookable(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()

	ok, reason, err := resolveSlot(schedule, friday, "14:00", nil, farFuture, 24*time.Hour)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestResolveSlot_OutsideWorkHours(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()

	ok, reason, err := resolveSlot(schedule, friday, "09:00", nil, farFuture, 24*time.Hour)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ReasonOutsideWorkHours, reason)
}

func TestResolveSlot_LunchBreak(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()

	ok, reason, err := resolveSlot(schedule, friday, "12:00", nil, farFuture, 24*time.Hour)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ReasonLunchBreak, reason)
}

func TestResolveSlot_Booked(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()
	events := []*domain.CalendarEvent{fixedEvent(t, friday, "14:00", "15:00")}

	ok, reason, err := resolveSlot(schedule, friday, "14:00", events, farFuture, 24*time.Hour)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ReasonBooked, reason)
}

func TestResolveSlot_EventBoundaries(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()
	// Событие 14:00-15:00: слот 15:00 свободен, слот до начала свободен
	events := []*domain.CalendarEvent{fixedEvent(t, friday, "14:00", "15:00")}

	ok, _, err := resolveSlot(schedule, friday, "15:00", events, farFuture, 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "event ending at slot start does not block it")

	ok, _, err = resolveSlot(schedule, friday, "13:00", events, farFuture, 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolveSlot_LeadTime(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()
	leadTime := 24 * time.Hour

	// now ровно за 24 часа до слота 14:00 - слот еще бронируется
	now := time.Date(2026, 6, 4, 14, 0, 0, 0, time.UTC)
	ok, reason, err := resolveSlot(schedule, friday, "14:00", nil, now, leadTime)
	require.NoError(t, err)
	assert.True(t, ok, "slot exactly leadTime away is bookable")
	assert.Empty(t, reason)

	// Минутой позже - уже нет
	ok, reason, err = resolveSlot(schedule, friday, "14:00", nil, now.Add(time.Minute), leadTime)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ReasonLeadTime, reason)
}

func TestResolveSlot_PrecedenceOrder(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()

	// Слот одновременно на обеде, занят и нарушает lead time:
	// побеждает первая причина в порядке проверок
	events := []*domain.CalendarEvent{fixedEvent(t, friday, "12:00", "13:00")}
	now := friday.AddDate(0, 0, 1)

	ok, reason, err := resolveSlot(schedule, friday, "12:00", events, now, 24*time.Hour)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ReasonLunchBreak, reason)
}
