package habits

import (
	"context"
	"errors"

	"habit-tracker-go/internal/domain/apperror"
	habitsdomain "habit-tracker-go/internal/domain/habits"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(habitsdomain.Repository) error) error {
	return apperror.Storage(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	}))
}

func (r *PostgresRepository) ListVisible(ctx context.Context, userID string) ([]habitsdomain.Habit, error) {
	habits := make([]habitsdomain.Habit, 0)
	if err := r.db.WithContext(ctx).
		Where("scope = ? OR owner_id = ?", habitsdomain.ScopeGlobal, userID).
		Order("scope asc, name asc, created_at asc").
		Find(&habits).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return habits, nil
}

func (r *PostgresRepository) ListPersonal(ctx context.Context, userID string) ([]habitsdomain.Habit, error) {
	habits := make([]habitsdomain.Habit, 0)
	if err := r.db.WithContext(ctx).
		Where("scope = ? AND owner_id = ?", habitsdomain.ScopePersonal, userID).
		Order("name asc, created_at asc").
		Find(&habits).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return habits, nil
}

func (r *PostgresRepository) ListAvailableForDay(ctx context.Context, userID string, weekday int) ([]habitsdomain.Habit, error) {
	scheduled := r.db.
		Table("template_entries AS te").
		Select("te.habit_id").
		Joins("JOIN weekly_templates wt ON wt.id = te.template_id").
		Where("wt.user_id = ? AND wt.weekday = ?", userID, weekday)

	habits := make([]habitsdomain.Habit, 0)
	if err := r.db.WithContext(ctx).
		Where("scope = ? OR owner_id = ?", habitsdomain.ScopeGlobal, userID).
		Where("id NOT IN (?)", scheduled).
		Order("scope asc, name asc, created_at asc").
		Find(&habits).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return habits, nil
}

func (r *PostgresRepository) CreateHabit(ctx context.Context, habit *habitsdomain.Habit) error {
	return apperror.Storage(r.db.WithContext(ctx).Create(habit).Error)
}

func (r *PostgresRepository) RenamePersonal(ctx context.Context, userID, habitID, name string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&habitsdomain.Habit{}).
		Where("id = ? AND scope = ? AND owner_id = ?", habitID, habitsdomain.ScopePersonal, userID).
		Update("name", name)
	return result.RowsAffected > 0, apperror.Storage(result.Error)
}

func (r *PostgresRepository) DeletePersonal(ctx context.Context, userID, habitID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&habitsdomain.Habit{}, "id = ? AND scope = ? AND owner_id = ?", habitID, habitsdomain.ScopePersonal, userID)
	if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
		return false, habitsdomain.ErrHabitInUse
	}
	return result.RowsAffected > 0, apperror.Storage(result.Error)
}

func (r *PostgresRepository) GetPersonal(ctx context.Context, userID, habitID string) (*habitsdomain.Habit, error) {
	var habit habitsdomain.Habit
	if err := r.db.WithContext(ctx).
		Where("id = ? AND scope = ? AND owner_id = ?", habitID, habitsdomain.ScopePersonal, userID).
		First(&habit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, habitsdomain.ErrHabitNotFound
		}
		return nil, apperror.Storage(err)
	}
	return &habit, nil
}

func (r *PostgresRepository) CountReferences(ctx context.Context, habitID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM template_entries WHERE habit_id = ?) +
			(SELECT COUNT(*) FROM tracking_entries WHERE habit_id = ?)`,
		habitID, habitID,
	).Scan(&count).Error; err != nil {
		return 0, apperror.Storage(err)
	}
	return count, nil
}
