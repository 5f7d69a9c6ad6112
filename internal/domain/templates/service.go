package templates

import (
	"context"

	"habit-tracker-go/internal/calendar"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListAll returns the whole week; days without habits map to empty slices.
func (s *Service) ListAll(ctx context.Context, userID string) (Week, error) {
	scheduled, err := s.repo.ListScheduled(ctx, userID)
	if err != nil {
		return nil, err
	}

	week := make(Week, calendar.MaxWeekday+1)
	for weekday := calendar.MinWeekday; weekday <= calendar.MaxWeekday; weekday++ {
		week[weekday] = []ScheduledHabit{}
	}
	for _, item := range scheduled {
		if _, ok := week[item.Weekday]; !ok {
			continue
		}
		week[item.Weekday] = append(week[item.Weekday], item)
	}

	return week, nil
}

func (s *Service) ListForDay(ctx context.Context, userID string, weekday int) ([]ScheduledHabit, error) {
	if err := calendar.ValidateWeekday(weekday); err != nil {
		return nil, err
	}

	scheduled, err := s.repo.ListScheduledForDay(ctx, userID, weekday)
	if err != nil {
		return nil, err
	}
	if scheduled == nil {
		scheduled = []ScheduledHabit{}
	}
	return scheduled, nil
}

// AddToDay schedules a visible habit on weekday. Unknown, foreign and already
// scheduled habits all yield ErrInvalidHabit.
func (s *Service) AddToDay(ctx context.Context, userID string, weekday int, habitID string) error {
	if err := calendar.ValidateWeekday(weekday); err != nil {
		return err
	}
	if _, err := uuid.Parse(habitID); err != nil {
		return ErrInvalidHabit
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		template, err := tx.GetTemplate(ctx, userID, weekday)
		if err != nil {
			return err
		}

		visible, err := tx.IsHabitVisible(ctx, userID, habitID)
		if err != nil {
			return err
		}
		if !visible {
			return ErrInvalidHabit
		}

		scheduled, err := tx.IsScheduled(ctx, template.ID, habitID)
		if err != nil {
			return err
		}
		if scheduled {
			return ErrInvalidHabit
		}

		return tx.CreateEntry(ctx, &TemplateEntry{
			ID:         uuid.NewString(),
			TemplateID: template.ID,
			HabitID:    habitID,
		})
	})
}

// RemoveFromDay is idempotent: removing a habit that is not scheduled succeeds.
func (s *Service) RemoveFromDay(ctx context.Context, userID string, weekday int, habitID string) error {
	if err := calendar.ValidateWeekday(weekday); err != nil {
		return err
	}
	if _, err := uuid.Parse(habitID); err != nil {
		return nil
	}

	template, err := s.repo.GetTemplate(ctx, userID, weekday)
	if err != nil {
		return err
	}

	_, err = s.repo.DeleteEntry(ctx, template.ID, habitID)
	return err
}
