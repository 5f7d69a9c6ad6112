package templates

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetTemplate(ctx context.Context, userID string, weekday int) (*WeeklyTemplate, error)
	ListScheduled(ctx context.Context, userID string) ([]ScheduledHabit, error)
	ListScheduledForDay(ctx context.Context, userID string, weekday int) ([]ScheduledHabit, error)
	IsHabitVisible(ctx context.Context, userID, habitID string) (bool, error)
	IsScheduled(ctx context.Context, templateID, habitID string) (bool, error)
	// CreateEntry returns ErrInvalidHabit when the pair is already scheduled.
	CreateEntry(ctx context.Context, entry *TemplateEntry) error
	DeleteEntry(ctx context.Context, templateID, habitID string) (bool, error)
}
