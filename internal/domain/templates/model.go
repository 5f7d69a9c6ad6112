package templates

import (
	"time"

	habitsdomain "habit-tracker-go/internal/domain/habits"
)

// WeeklyTemplate is the recurring schedule slot of one user for one weekday.
type WeeklyTemplate struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:weekly_templates_user_weekday_key"`
	Weekday   int       `gorm:"not null;uniqueIndex:weekly_templates_user_weekday_key"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type TemplateEntry struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	TemplateID string    `gorm:"type:uuid;not null;uniqueIndex:template_entries_template_habit_key"`
	HabitID    string    `gorm:"type:uuid;not null;uniqueIndex:template_entries_template_habit_key"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

type ScheduledHabit struct {
	HabitID string
	Name    string
	Scope   habitsdomain.Scope
	Weekday int
}

// Week maps each weekday 0..6 to its scheduled habits in insertion order.
type Week map[int][]ScheduledHabit
