package domain

// Default schedule and booking values
const (
	DefaultOpenHour         = 10
	DefaultCloseHour        = 18
	DefaultLunchStartHour   = 12
	DefaultLunchStartMinute = 0
	DefaultLunchEndMinute   = 30

	DefaultSlotGranularityMinutes = 60
	DefaultLeadTimeHours          = 24
)

// Business validation constants
const (
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 480 // 8 hours
	MinLeadTimeHours          = 0
	MaxLeadTimeHours          = 168 // 1 week
	MaxTitleLength            = 200
	MaxDescriptionLength      = 1000
	MaxNoteLength             = 5000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
