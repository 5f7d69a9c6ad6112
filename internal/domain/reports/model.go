package reports

import "time"

// HabitCount is one habit's tally over a date range, keyed by display name.
type HabitCount struct {
	Name      string
	Completed int64
	Total     int64
}

type HabitStat struct {
	Completed int64 `json:"completed"`
	Total     int64 `json:"total"`
}

type MonthlyReport struct {
	Month          string
	From           time.Time
	To             time.Time
	TrackedDays    int64
	TotalTasks     int64
	CompletedTasks int64
	CompletionRate float64
	Habits         map[string]HabitStat
}
