package templates

import (
	"context"
	"errors"

	"habit-tracker-go/internal/domain/apperror"
	habitsdomain "habit-tracker-go/internal/domain/habits"
	templatesdomain "habit-tracker-go/internal/domain/templates"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(templatesdomain.Repository) error) error {
	return apperror.Storage(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	}))
}

func (r *PostgresRepository) GetTemplate(ctx context.Context, userID string, weekday int) (*templatesdomain.WeeklyTemplate, error) {
	var template templatesdomain.WeeklyTemplate
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND weekday = ?", userID, weekday).
		First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, templatesdomain.ErrTemplateNotFound
		}
		return nil, apperror.Storage(err)
	}
	return &template, nil
}

func (r *PostgresRepository) scheduledQuery(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("template_entries AS te").
		Select("te.habit_id, h.name, h.scope, wt.weekday").
		Joins("JOIN weekly_templates wt ON wt.id = te.template_id").
		Joins("JOIN habits h ON h.id = te.habit_id").
		Where("wt.user_id = ?", userID)
}

func (r *PostgresRepository) ListScheduled(ctx context.Context, userID string) ([]templatesdomain.ScheduledHabit, error) {
	scheduled := make([]templatesdomain.ScheduledHabit, 0)
	if err := r.scheduledQuery(ctx, userID).
		Order("wt.weekday asc, te.created_at asc, te.id asc").
		Scan(&scheduled).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return scheduled, nil
}

func (r *PostgresRepository) ListScheduledForDay(ctx context.Context, userID string, weekday int) ([]templatesdomain.ScheduledHabit, error) {
	scheduled := make([]templatesdomain.ScheduledHabit, 0)
	if err := r.scheduledQuery(ctx, userID).
		Where("wt.weekday = ?", weekday).
		Order("te.created_at asc, te.id asc").
		Scan(&scheduled).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return scheduled, nil
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

func (r *PostgresRepository) IsScheduled(ctx context.Context, templateID, habitID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&templatesdomain.TemplateEntry{}).
		Where("template_id = ? AND habit_id = ?", templateID, habitID).
		Count(&count).Error; err != nil {
		return false, apperror.Storage(err)
	}
	return count > 0, nil
}

func (r *PostgresRepository) CreateEntry(ctx context.Context, entry *templatesdomain.TemplateEntry) error {
	err := r.db.WithContext(ctx).Create(entry).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return templatesdomain.ErrInvalidHabit
	default:
		return apperror.Storage(err)
	}
}

func (r *PostgresRepository) DeleteEntry(ctx context.Context, templateID, habitID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&templatesdomain.TemplateEntry{}, "template_id = ? AND habit_id = ?", templateID, habitID)
	return result.RowsAffected > 0, apperror.Storage(result.Error)
}
