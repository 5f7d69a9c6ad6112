package tracking

import (
	"context"
	"errors"
	"time"

	"habit-tracker-go/internal/calendar"
	"habit-tracker-go/internal/domain/apperror"
	habitsdomain "habit-tracker-go/internal/domain/habits"
	trackingdomain "habit-tracker-go/internal/domain/tracking"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(trackingdomain.Repository) error) error {
	return apperror.Storage(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	}))
}

// Dates are bound as YYYY-MM-DD text so the comparison against the date
// column does not depend on the session time zone.
func (r *PostgresRepository) GetTracking(ctx context.Context, userID string, date time.Time) (*trackingdomain.DailyTracking, error) {
	var tracking trackingdomain.DailyTracking
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, calendar.FormatDate(date)).
		First(&tracking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trackingdomain.ErrTrackingNotFound
		}
		return nil, apperror.Storage(err)
	}
	return &tracking, nil
}

func (r *PostgresRepository) CreateTracking(ctx context.Context, tracking *trackingdomain.DailyTracking) error {
	err := r.db.WithContext(ctx).Create(tracking).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return trackingdomain.ErrTrackingExists
	}
	return apperror.Storage(err)
}

func (r *PostgresRepository) DeleteTracking(ctx context.Context, trackingID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&trackingdomain.DailyTracking{}, "id = ?", trackingID)
	return result.RowsAffected > 0, apperror.Storage(result.Error)
}

func (r *PostgresRepository) ListDays(ctx context.Context, userID string, from, to time.Time) ([]trackingdomain.DaySummary, error) {
	type row struct {
		Date      time.Time `gorm:"column:date"`
		Total     int64     `gorm:"column:total"`
		Completed int64     `gorm:"column:completed"`
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Table("daily_trackings AS dt").
		Select(`
			dt.date,
			COUNT(te.id) AS total,
			COUNT(te.id) FILTER (WHERE te.completed) AS completed`).
		Joins("LEFT JOIN tracking_entries te ON te.tracking_id = dt.id").
		Where("dt.user_id = ? AND dt.date BETWEEN ? AND ?", userID, calendar.FormatDate(from), calendar.FormatDate(to)).
		Group("dt.date").
		Order("dt.date asc").
		Scan(&rows).Error; err != nil {
		return nil, apperror.Storage(err)
	}

	days := make([]trackingdomain.DaySummary, 0, len(rows))
	for _, item := range rows {
		days = append(days, trackingdomain.DaySummary{
			Date:      calendar.DateOnly(item.Date),
			Completed: item.Completed,
			Total:     item.Total,
		})
	}
	return days, nil
}

func (r *PostgresRepository) TemplateHabitIDs(ctx context.Context, userID string, weekday int) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Table("template_entries AS te").
		Joins("JOIN weekly_templates wt ON wt.id = te.template_id").
		Where("wt.user_id = ? AND wt.weekday = ?", userID, weekday).
		Order("te.created_at asc, te.id asc").
		Pluck("te.habit_id", &ids).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return ids, nil
}

func (r *PostgresRepository) IsHabitVisible(ctx context.Context, userID, habitID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&habitsdomain.Habit{}).
		Where("id = ? AND (scope = ? OR owner_id = ?)", habitID, habitsdomain.ScopeGlobal, userID).
		Count(&count).Error; err != nil {
		return false, apperror.Storage(err)
	}
	return count > 0, nil
}

func (r *PostgresRepository) ListEntries(ctx context.Context, trackingID string) ([]trackingdomain.DayEntry, error) {
	entries := make([]trackingdomain.DayEntry, 0)
	if err := r.db.WithContext(ctx).
		Table("tracking_entries AS te").
		Select("te.habit_id, h.name, h.scope, te.completed").
		Joins("JOIN habits h ON h.id = te.habit_id").
		Where("te.tracking_id = ?", trackingID).
		Order("te.created_at asc, te.id asc").
		Scan(&entries).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return entries, nil
}

func (r *PostgresRepository) CreateEntries(ctx context.Context, entries []trackingdomain.TrackingEntry) error {
	if len(entries) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Create(&entries).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return trackingdomain.ErrInvalidHabit
	}
	return apperror.Storage(err)
}

func (r *PostgresRepository) CreateEntry(ctx context.Context, entry *trackingdomain.TrackingEntry) error {
	err := r.db.WithContext(ctx).Create(entry).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return trackingdomain.ErrHabitAlreadyTracked
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return trackingdomain.ErrInvalidHabit
	default:
		return apperror.Storage(err)
	}
}

func (r *PostgresRepository) SetCompleted(ctx context.Context, trackingID, habitID string, completed bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&trackingdomain.TrackingEntry{}).
		Where("tracking_id = ? AND habit_id = ?", trackingID, habitID).
		Updates(map[string]interface{}{
			"completed":  completed,
			"updated_at": time.Now().UTC(),
		})
	return result.RowsAffected > 0, apperror.Storage(result.Error)
}

func (r *PostgresRepository) DeleteEntry(ctx context.Context, trackingID, habitID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&trackingdomain.TrackingEntry{}, "tracking_id = ? AND habit_id = ?", trackingID, habitID)
	return result.RowsAffected > 0, apperror.Storage(result.Error)
}

func (r *PostgresRepository) DeleteEntries(ctx context.Context, trackingID string) error {
	return apperror.Storage(r.db.WithContext(ctx).Delete(&trackingdomain.TrackingEntry{}, "tracking_id = ?", trackingID).Error)
}
