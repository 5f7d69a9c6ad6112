package tracking

import (
	"context"
	"time"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	GetTracking(ctx context.Context, userID string, date time.Time) (*DailyTracking, error)
	// CreateTracking returns ErrTrackingExists when (user, date) is taken.
	CreateTracking(ctx context.Context, tracking *DailyTracking) error
	DeleteTracking(ctx context.Context, trackingID string) (bool, error)
	ListDays(ctx context.Context, userID string, from, to time.Time) ([]DaySummary, error)

	// TemplateHabitIDs reads the habits scheduled for weekday in insertion order.
	TemplateHabitIDs(ctx context.Context, userID string, weekday int) ([]string, error)
	IsHabitVisible(ctx context.Context, userID, habitID string) (bool, error)

	ListEntries(ctx context.Context, trackingID string) ([]DayEntry, error)
	CreateEntries(ctx context.Context, entries []TrackingEntry) error
	// CreateEntry returns ErrHabitAlreadyTracked when the habit is already tracked.
	CreateEntry(ctx context.Context, entry *TrackingEntry) error
	SetCompleted(ctx context.Context, trackingID, habitID string, completed bool) (bool, error)
	DeleteEntry(ctx context.Context, trackingID, habitID string) (bool, error)
	DeleteEntries(ctx context.Context, trackingID string) error
}
