package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarEvent_Occupies(t *testing.T) {
	event := &CalendarEvent{
		StartTime: time.Date(2026, 6, 5, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 6, 5, 15, 0, 0, 0, time.UTC),
	}

	assert.False(t, event.Occupies(time.Date(2026, 6, 5, 13, 59, 0, 0, time.UTC)))
	assert.True(t, event.Occupies(time.Date(2026, 6, 5, 14, 0, 0, 0, time.UTC)), "start is inclusive")
	assert.True(t, event.Occupies(time.Date(2026, 6, 5, 14, 30, 0, 0, time.UTC)))
	assert.False(t, event.Occupies(time.Date(2026, 6, 5, 15, 0, 0, 0, time.UTC)), "end is exclusive")
}

func TestEventType_IsValid(t *testing.T) {
	assert.True(t, TypeEvent.IsValid())
	assert.True(t, TypeTask.IsValid())
	assert.True(t, TypeAppointment.IsValid())
	assert.False(t, EventType("meeting").IsValid())
	assert.False(t, EventType("").IsValid())
}

func TestEventType_Color(t *testing.T) {
	assert.Equal(t, "#3b82f6", TypeEvent.Color())
	assert.Equal(t, "#10b981", TypeTask.Color())
	assert.Equal(t, "#8b5cf6", TypeAppointment.Color())
}

func TestEventUpdate_IsEmpty(t *testing.T) {
	assert.True(t, (&EventUpdate{}).IsEmpty())

	title := "updated"
	assert.False(t, (&EventUpdate{Title: &title}).IsEmpty())
	assert.False(t, (&EventUpdate{Invitees: []string{}}).IsEmpty(), "empty invitees list still clears the field")
}
