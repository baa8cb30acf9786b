package domain

import "time"

// DailyNote represents a free-text note attached to exactly one date
// At most one note exists per date; saving replaces the content in place
type DailyNote struct {
	Date    time.Time // key, unique
	Content string

	CreatedAt time.Time
	UpdatedAt time.Time
}
