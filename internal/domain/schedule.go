package domain

import (
	"fmt"
	"time"
)

// WorkSchedule represents the recurring weekly work calendar: which weekdays
// are workable, the daily open/close window and the lunch break.
// It is configuration, not persisted state.
type WorkSchedule struct {
	WorkDays         []time.Weekday
	OpenHour         int
	CloseHour        int
	LunchStartHour   int
	LunchStartMinute int
	LunchEndMinute   int
}

// DefaultWorkSchedule returns the standard schedule:
// Mon-Fri, 10:00-18:00, lunch 12:00-12:30
func DefaultWorkSchedule() WorkSchedule {
	return WorkSchedule{
		WorkDays: []time.Weekday{
			time.Monday,
			time.Tuesday,
			time.Wednesday,
			time.Thursday,
			time.Friday,
		},
		OpenHour:         DefaultOpenHour,
		CloseHour:        DefaultCloseHour,
		LunchStartHour:   DefaultLunchStartHour,
		LunchStartMinute: DefaultLunchStartMinute,
		LunchEndMinute:   DefaultLunchEndMinute,
	}
}

// Validate checks the schedule invariant:
// open hour < lunch start <= lunch end < close hour
func (s WorkSchedule) Validate() error {
	if len(s.WorkDays) == 0 {
		return fmt.Errorf("work schedule: at least one work day is required")
	}
	if s.OpenHour < 0 || s.OpenHour > 23 || s.CloseHour < 1 || s.CloseHour > 24 {
		return fmt.Errorf("work schedule: open/close hours out of range: %d-%d", s.OpenHour, s.CloseHour)
	}
	if s.OpenHour >= s.CloseHour {
		return fmt.Errorf("work schedule: open hour %d must be before close hour %d", s.OpenHour, s.CloseHour)
	}
	if s.LunchStartHour <= s.OpenHour || s.LunchStartHour >= s.CloseHour {
		return fmt.Errorf("work schedule: lunch hour %d must lie within work window %d-%d", s.LunchStartHour, s.OpenHour, s.CloseHour)
	}
	if s.LunchStartMinute < 0 || s.LunchStartMinute > 59 || s.LunchEndMinute < 0 || s.LunchEndMinute > 60 {
		return fmt.Errorf("work schedule: lunch minutes out of range: %d-%d", s.LunchStartMinute, s.LunchEndMinute)
	}
	if s.LunchStartMinute > s.LunchEndMinute {
		return fmt.Errorf("work schedule: lunch start minute %d must not be after end minute %d", s.LunchStartMinute, s.LunchEndMinute)
	}
	return nil
}

// IsWorkDay returns true if the date's weekday is in the work-day set
func (s WorkSchedule) IsWorkDay(date time.Time) bool {
	weekday := date.Weekday()
	for _, d := range s.WorkDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// IsWithinWorkHours returns true if the instant falls on a work day
// within the open/close window
func (s WorkSchedule) IsWithinWorkHours(instant time.Time) bool {
	if !s.IsWorkDay(instant) {
		return false
	}
	hour := instant.Hour()
	return hour >= s.OpenHour && hour < s.CloseHour
}

// IsLunchTime returns true if the instant falls inside the lunch break.
// Only the lunch start hour is inspected: a lunch window crossing an hour
// boundary is not flagged past that hour. The booking site has always run
// a 30-minute lunch inside a single hour, so the window is constrained to
// one hour by Validate.
func (s WorkSchedule) IsLunchTime(instant time.Time) bool {
	if instant.Hour() != s.LunchStartHour {
		return false
	}
	minute := instant.Minute()
	return minute >= s.LunchStartMinute && minute < s.LunchEndMinute
}
