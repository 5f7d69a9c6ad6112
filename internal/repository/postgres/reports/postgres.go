package reports

import (
	"context"
	"database/sql"
	"time"

	"habit-tracker-go/internal/calendar"
	"habit-tracker-go/internal/domain/apperror"
	reportsdomain "habit-tracker-go/internal/domain/reports"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Snapshot runs fn in a read-only REPEATABLE READ transaction so every read
// sees the same committed state.
func (r *PostgresRepository) Snapshot(ctx context.Context, fn func(reportsdomain.Repository) error) error {
	return apperror.Storage(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}))
}

func (r *PostgresRepository) HabitCounts(ctx context.Context, userID string, from, to time.Time) ([]reportsdomain.HabitCount, error) {
	counts := make([]reportsdomain.HabitCount, 0)
	if err := r.db.WithContext(ctx).
		Table("tracking_entries AS te").
		Select(`
			h.name,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE te.completed) AS completed`).
		Joins("JOIN daily_trackings dt ON dt.id = te.tracking_id").
		Joins("JOIN habits h ON h.id = te.habit_id").
		Where("dt.user_id = ? AND dt.date BETWEEN ? AND ?", userID, calendar.FormatDate(from), calendar.FormatDate(to)).
		Group("h.name").
		Order("h.name asc").
		Scan(&counts).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return counts, nil
}

func (r *PostgresRepository) TrackedDays(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("daily_trackings").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, calendar.FormatDate(from), calendar.FormatDate(to)).
		Count(&count).Error; err != nil {
		return 0, apperror.Storage(err)
	}
	return count, nil
}
