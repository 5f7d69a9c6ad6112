package tracking

import (
	"time"

	habitsdomain "habit-tracker-go/internal/domain/habits"
)

// DailyTracking is the materialized record of one user's habits for one date.
// Once created it never follows later template edits.
type DailyTracking struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:daily_trackings_user_date_key"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:daily_trackings_user_date_key"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type TrackingEntry struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	TrackingID string    `gorm:"type:uuid;not null;uniqueIndex:tracking_entries_tracking_habit_key"`
	HabitID    string    `gorm:"type:uuid;not null;uniqueIndex:tracking_entries_tracking_habit_key"`
	Completed  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

type DayEntry struct {
	HabitID   string
	Name      string
	Scope     habitsdomain.Scope
	Completed bool
}

type Day struct {
	Tracking DailyTracking
	Entries  []DayEntry
}

type DaySummary struct {
	Date      time.Time
	Completed int64
	Total     int64
}
