package habits

import (
	"context"
	"strings"

	"habit-tracker-go/internal/calendar"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListVisible returns every global habit plus the personal habits of userID.
func (s *Service) ListVisible(ctx context.Context, userID string) ([]Habit, error) {
	return s.repo.ListVisible(ctx, userID)
}

func (s *Service) ListPersonal(ctx context.Context, userID string) ([]Habit, error) {
	return s.repo.ListPersonal(ctx, userID)
}

func (s *Service) CreatePersonal(ctx context.Context, userID, name string) (*Habit, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}

	owner := userID
	habit := Habit{
		ID:      uuid.NewString(),
		Name:    trimmed,
		Scope:   ScopePersonal,
		OwnerID: &owner,
	}

	if err := s.repo.CreateHabit(ctx, &habit); err != nil {
		return nil, err
	}

	return &habit, nil
}

// RenamePersonal fails with ErrHabitNotFound when the habit is missing, global
// or owned by someone else; callers cannot tell these cases apart.
func (s *Service) RenamePersonal(ctx context.Context, userID, habitID, name string) (*Habit, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}
	if !isValidID(habitID) {
		return nil, ErrHabitNotFound
	}

	renamed, err := s.repo.RenamePersonal(ctx, userID, habitID, trimmed)
	if err != nil {
		return nil, err
	}
	if !renamed {
		return nil, ErrHabitNotFound
	}

	return s.repo.GetPersonal(ctx, userID, habitID)
}

// DeletePersonal refuses to delete a habit that is still referenced by a
// template or a tracked day, so past reports keep their rows.
func (s *Service) DeletePersonal(ctx context.Context, userID, habitID string) error {
	if !isValidID(habitID) {
		return ErrHabitNotFound
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetPersonal(ctx, userID, habitID); err != nil {
			return err
		}

		refs, err := tx.CountReferences(ctx, habitID)
		if err != nil {
			return err
		}
		if refs > 0 {
			return ErrHabitInUse
		}

		deleted, err := tx.DeletePersonal(ctx, userID, habitID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrHabitNotFound
		}
		return nil
	})
}

// ListAvailableForDay lists visible habits not yet scheduled on weekday.
func (s *Service) ListAvailableForDay(ctx context.Context, userID string, weekday int) ([]Habit, error) {
	if err := calendar.ValidateWeekday(weekday); err != nil {
		return nil, err
	}
	return s.repo.ListAvailableForDay(ctx, userID, weekday)
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
