package tracking

import (
	"context"
	"errors"
	"time"

	"habit-tracker-go/internal/calendar"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Materialize snapshots the template of date's weekday into a new tracking
// record. It is not idempotent: a second call for the same date fails with
// ErrTrackingExists and leaves the first record untouched.
func (s *Service) Materialize(ctx context.Context, userID string, date time.Time) (*Day, error) {
	date = calendar.DateOnly(date)
	weekday := calendar.WeekdayOf(date)

	var day Day
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetTracking(ctx, userID, date); err == nil {
			return ErrTrackingExists
		} else if !errors.Is(err, ErrTrackingNotFound) {
			return err
		}

		habitIDs, err := tx.TemplateHabitIDs(ctx, userID, weekday)
		if err != nil {
			return err
		}

		tracking := DailyTracking{
			ID:     uuid.NewString(),
			UserID: userID,
			Date:   date,
		}
		if err := tx.CreateTracking(ctx, &tracking); err != nil {
			return err
		}

		if len(habitIDs) > 0 {
			// One insert for the whole day; distinct timestamps keep template order.
			createdAt := time.Now().UTC()
			entries := make([]TrackingEntry, 0, len(habitIDs))
			for i, habitID := range habitIDs {
				entries = append(entries, TrackingEntry{
					ID:         uuid.NewString(),
					TrackingID: tracking.ID,
					HabitID:    habitID,
					Completed:  false,
					CreatedAt:  createdAt.Add(time.Duration(i) * time.Microsecond),
				})
			}
			if err := tx.CreateEntries(ctx, entries); err != nil {
				return err
			}
		}

		listed, err := tx.ListEntries(ctx, tracking.ID)
		if err != nil {
			return err
		}

		day = Day{Tracking: tracking, Entries: nonNilEntries(listed)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &day, nil
}

// GetDay fails with ErrTrackingNotFound when date has not been materialized.
func (s *Service) GetDay(ctx context.Context, userID string, date time.Time) (*Day, error) {
	tracking, err := s.repo.GetTracking(ctx, userID, calendar.DateOnly(date))
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListEntries(ctx, tracking.ID)
	if err != nil {
		return nil, err
	}

	return &Day{Tracking: *tracking, Entries: nonNilEntries(entries)}, nil
}

func (s *Service) ListDays(ctx context.Context, userID string, from, to time.Time) ([]DaySummary, error) {
	from = calendar.DateOnly(from)
	to = calendar.DateOnly(to)
	if to.Before(from) {
		return nil, calendar.ErrInvalidRange
	}

	days, err := s.repo.ListDays(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = []DaySummary{}
	}
	return days, nil
}

// AddHabit adds a visible habit to an already materialized day. The template
// is not touched.
func (s *Service) AddHabit(ctx context.Context, userID string, date time.Time, habitID string) error {
	if _, err := uuid.Parse(habitID); err != nil {
		return ErrInvalidHabit
	}

	tracking, err := s.repo.GetTracking(ctx, userID, calendar.DateOnly(date))
	if err != nil {
		return err
	}

	visible, err := s.repo.IsHabitVisible(ctx, userID, habitID)
	if err != nil {
		return err
	}
	if !visible {
		return ErrInvalidHabit
	}

	return s.repo.CreateEntry(ctx, &TrackingEntry{
		ID:         uuid.NewString(),
		TrackingID: tracking.ID,
		HabitID:    habitID,
		Completed:  false,
	})
}

// RemoveHabit is idempotent, including for dates that were never tracked.
func (s *Service) RemoveHabit(ctx context.Context, userID string, date time.Time, habitID string) error {
	if _, err := uuid.Parse(habitID); err != nil {
		return nil
	}

	tracking, err := s.repo.GetTracking(ctx, userID, calendar.DateOnly(date))
	if err != nil {
		if errors.Is(err, ErrTrackingNotFound) {
			return nil
		}
		return err
	}

	_, err = s.repo.DeleteEntry(ctx, tracking.ID, habitID)
	return err
}

// SetCompletion only updates existing entries; it never creates one.
func (s *Service) SetCompletion(ctx context.Context, userID string, date time.Time, habitID string, completed bool) error {
	if _, err := uuid.Parse(habitID); err != nil {
		return ErrEntryNotFound
	}

	tracking, err := s.repo.GetTracking(ctx, userID, calendar.DateOnly(date))
	if err != nil {
		return err
	}

	updated, err := s.repo.SetCompleted(ctx, tracking.ID, habitID, completed)
	if err != nil {
		return err
	}
	if !updated {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteDay removes the entries and then the tracking record in one
// transaction. Deleting an untracked date succeeds.
func (s *Service) DeleteDay(ctx context.Context, userID string, date time.Time) error {
	date = calendar.DateOnly(date)

	return s.repo.Transaction(ctx, func(tx Repository) error {
		tracking, err := tx.GetTracking(ctx, userID, date)
		if err != nil {
			if errors.Is(err, ErrTrackingNotFound) {
				return nil
			}
			return err
		}

		if err := tx.DeleteEntries(ctx, tracking.ID); err != nil {
			return err
		}
		_, err = tx.DeleteTracking(ctx, tracking.ID)
		return err
	})
}

func nonNilEntries(entries []DayEntry) []DayEntry {
	if entries == nil {
		return []DayEntry{}
	}
	return entries
}
