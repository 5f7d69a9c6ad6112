package reports

import (
	"context"
	"time"
)

// Repository reads tracking data only; templates never feed a report.
type Repository interface {
	// Snapshot runs fn against a single read-only view of the data.
	Snapshot(ctx context.Context, fn func(Repository) error) error
	HabitCounts(ctx context.Context, userID string, from, to time.Time) ([]HabitCount, error)
	TrackedDays(ctx context.Context, userID string, from, to time.Time) (int64, error)
}
