package user

import (
	"context"
	"errors"

	"habit-tracker-go/internal/calendar"
	"habit-tracker-go/internal/domain/apperror"
	templatesdomain "habit-tracker-go/internal/domain/templates"
	domain "habit-tracker-go/internal/domain/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return apperror.Storage(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	}))
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUsernameTaken
	}
	return apperror.Storage(err)
}

func (r *PostgresRepository) CreateWeekTemplates(ctx context.Context, userID string) error {
	week := make([]templatesdomain.WeeklyTemplate, 0, calendar.MaxWeekday+1)
	for weekday := calendar.MinWeekday; weekday <= calendar.MaxWeekday; weekday++ {
		week = append(week, templatesdomain.WeeklyTemplate{
			ID:      uuid.NewString(),
			UserID:  userID,
			Weekday: weekday,
		})
	}
	return apperror.Storage(r.db.WithContext(ctx).Create(&week).Error)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.first(ctx, "id = ?", userID)
}

func (r *PostgresRepository) first(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperror.Storage(err)
	}
	return &user, nil
}
