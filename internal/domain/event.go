package domain

import (
	"time"
)

// EventType represents the kind of a calendar event
// The type is purely cosmetic: it drives a color and an icon in the UI
// and carries no scheduling semantics
type EventType string

const (
	TypeEvent       EventType = "event"
	TypeTask        EventType = "task"
	TypeAppointment EventType = "appointment"
)

// EventColors fixed mapping from event type to display color
// The color is derived at creation time and is not independently meaningful
var EventColors = map[EventType]string{
	TypeEvent:       "#3b82f6",
	TypeTask:        "#10b981",
	TypeAppointment: "#8b5cf6",
}

// IsValid returns true if the event type is one of the known types
func (t EventType) IsValid() bool {
	_, ok := EventColors[t]
	return ok
}

// Color returns the display color for the event type
func (t EventType) Color() string {
	return EventColors[t]
}

// CalendarEvent represents a scheduled occupation of time
type CalendarEvent struct {
	ID              string // assigned by the store on creation
	Title           string
	Type            EventType
	Date            time.Time // calendar date, partition key for availability queries
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int // redundant with start/end, kept consistent

	// Descriptive fields, no scheduling effect
	Location    *string
	Description *string
	Invitees    []string

	Color string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupies returns true if the event's interval [StartTime, EndTime)
// contains the given instant. An event ending exactly at the instant does
// not occupy it; an event starting exactly at the instant does.
func (e *CalendarEvent) Occupies(instant time.Time) bool {
	return !instant.Before(e.StartTime) && instant.Before(e.EndTime)
}

// EventsFilter describes a date-based query over calendar events
// StartDate and EndDate are inclusive; equal dates query a single day
type EventsFilter struct {
	StartDate time.Time
	EndDate   time.Time
}

// EventUpdate describes a partial update of a calendar event
// Nil fields are left unchanged
type EventUpdate struct {
	Title           *string
	Type            *EventType
	Date            *time.Time
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes *int
	Location        *string
	Description     *string
	Invitees        []string
}

// IsEmpty returns true if the update changes nothing
func (u *EventUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Type == nil &&
		u.Date == nil &&
		u.StartTime == nil &&
		u.EndTime == nil &&
		u.DurationMinutes == nil &&
		u.Location == nil &&
		u.Description == nil &&
		u.Invitees == nil
}
