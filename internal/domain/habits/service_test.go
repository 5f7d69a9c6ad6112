package habits

import (
	"context"
	"errors"
	"sort"
	"testing"

	"habit-tracker-go/internal/calendar"
	"habit-tracker-go/internal/domain/apperror"
)

const (
	globalReadingID = "00000000-0000-4000-8000-000000000001"
	globalWaterID   = "00000000-0000-4000-8000-000000000002"
	missingHabitID  = "00000000-0000-4000-8000-0000000000ff"
)

type fakeHabitsRepo struct {
	habits    map[string]*Habit
	refs      map[string]int64
	scheduled map[string]map[int]map[string]bool
}

func newFakeHabitsRepo() *fakeHabitsRepo {
	return &fakeHabitsRepo{
		habits: map[string]*Habit{
			globalReadingID: {ID: globalReadingID, Name: "Reading", Scope: ScopeGlobal},
			globalWaterID:   {ID: globalWaterID, Name: "Drink water", Scope: ScopeGlobal},
		},
		refs:      make(map[string]int64),
		scheduled: make(map[string]map[int]map[string]bool),
	}
}

func (r *fakeHabitsRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeHabitsRepo) visible(userID string) []Habit {
	result := make([]Habit, 0)
	for _, habit := range r.habits {
		if habit.IsGlobal() || habit.OwnedBy(userID) {
			result = append(result, *habit)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func (r *fakeHabitsRepo) ListVisible(ctx context.Context, userID string) ([]Habit, error) {
	return r.visible(userID), nil
}

func (r *fakeHabitsRepo) ListPersonal(ctx context.Context, userID string) ([]Habit, error) {
	result := make([]Habit, 0)
	for _, habit := range r.visible(userID) {
		if !habit.IsGlobal() {
			result = append(result, habit)
		}
	}
	return result, nil
}

func (r *fakeHabitsRepo) ListAvailableForDay(ctx context.Context, userID string, weekday int) ([]Habit, error) {
	result := make([]Habit, 0)
	for _, habit := range r.visible(userID) {
		if r.scheduled[userID][weekday][habit.ID] {
			continue
		}
		result = append(result, habit)
	}
	return result, nil
}

func (r *fakeHabitsRepo) CreateHabit(ctx context.Context, habit *Habit) error {
	r.habits[habit.ID] = habit
	return nil
}

func (r *fakeHabitsRepo) RenamePersonal(ctx context.Context, userID, habitID, name string) (bool, error) {
	habit, ok := r.habits[habitID]
	if !ok || !habit.OwnedBy(userID) {
		return false, nil
	}
	habit.Name = name
	return true, nil
}

func (r *fakeHabitsRepo) DeletePersonal(ctx context.Context, userID, habitID string) (bool, error) {
	habit, ok := r.habits[habitID]
	if !ok || !habit.OwnedBy(userID) {
		return false, nil
	}
	delete(r.habits, habitID)
	return true, nil
}

func (r *fakeHabitsRepo) GetPersonal(ctx context.Context, userID, habitID string) (*Habit, error) {
	habit, ok := r.habits[habitID]
	if !ok || !habit.OwnedBy(userID) {
		return nil, ErrHabitNotFound
	}
	copied := *habit
	return &copied, nil
}

func (r *fakeHabitsRepo) CountReferences(ctx context.Context, habitID string) (int64, error) {
	return r.refs[habitID], nil
}

func (r *fakeHabitsRepo) schedule(userID string, weekday int, habitID string) {
	if r.scheduled[userID] == nil {
		r.scheduled[userID] = make(map[int]map[string]bool)
	}
	if r.scheduled[userID][weekday] == nil {
		r.scheduled[userID][weekday] = make(map[string]bool)
	}
	r.scheduled[userID][weekday][habitID] = true
}

func TestCreatePersonalTrimsName(t *testing.T) {
	repo := newFakeHabitsRepo()
	svc := NewService(repo)

	habit, err := svc.CreatePersonal(context.Background(), "user-1", "  Stretch  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if habit.Name != "Stretch" {
		t.Fatalf("expected trimmed name, got %q", habit.Name)
	}
	if habit.Scope != ScopePersonal {
		t.Fatalf("expected personal scope, got %q", habit.Scope)
	}
	if habit.OwnerID == nil || *habit.OwnerID != "user-1" {
		t.Fatalf("expected owner user-1, got %v", habit.OwnerID)
	}
	if _, ok := repo.habits[habit.ID]; !ok {
		t.Fatalf("expected habit stored")
	}
}

func TestCreatePersonalRejectsBlankName(t *testing.T) {
	svc := NewService(newFakeHabitsRepo())

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreatePersonal(context.Background(), "user-1", name)
		if !errors.Is(err, ErrNameRequired) {
			t.Fatalf("expected ErrNameRequired for %q, got %v", name, err)
		}
		if !errors.Is(err, apperror.ErrValidation) {
			t.Fatalf("expected validation kind for %q", name)
		}
	}
}

func TestRenamePersonalOwner(t *testing.T) {
	repo := newFakeHabitsRepo()
	svc := NewService(repo)
	habit, _ := svc.CreatePersonal(context.Background(), "user-1", "Stretch")

	renamed, err := svc.RenamePersonal(context.Background(), "user-1", habit.ID, " Yoga ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if renamed.Name != "Yoga" {
		t.Fatalf("expected Yoga, got %q", renamed.Name)
	}
}

func TestRenameAndDeleteAreIndistinguishableForForeignHabits(t *testing.T) {
	repo := newFakeHabitsRepo()
	svc := NewService(repo)
	foreign, _ := svc.CreatePersonal(context.Background(), "user-2", "Secret habit")

	cases := map[string]string{
		"global":    globalReadingID,
		"foreign":   foreign.ID,
		"missing":   missingHabitID,
		"malformed": "not-a-uuid",
	}

	for name, habitID := range cases {
		_, err := svc.RenamePersonal(context.Background(), "user-1", habitID, "Renamed")
		if !errors.Is(err, ErrHabitNotFound) {
			t.Fatalf("%s rename: expected ErrHabitNotFound, got %v", name, err)
		}

		err = svc.DeletePersonal(context.Background(), "user-1", habitID)
		if !errors.Is(err, ErrHabitNotFound) {
			t.Fatalf("%s delete: expected ErrHabitNotFound, got %v", name, err)
		}
		if !errors.Is(err, apperror.ErrNotFoundOrForbidden) {
			t.Fatalf("%s delete: expected not found kind", name)
		}
	}

	if repo.habits[globalReadingID].Name != "Reading" {
		t.Fatalf("expected global habit untouched")
	}
	if repo.habits[foreign.ID].Name != "Secret habit" {
		t.Fatalf("expected foreign habit untouched")
	}
}

func TestDeletePersonalBlockedWhileReferenced(t *testing.T) {
	repo := newFakeHabitsRepo()
	svc := NewService(repo)
	habit, _ := svc.CreatePersonal(context.Background(), "user-1", "Stretch")
	repo.refs[habit.ID] = 2

	err := svc.DeletePersonal(context.Background(), "user-1", habit.ID)
	if !errors.Is(err, ErrHabitInUse) {
		t.Fatalf("expected ErrHabitInUse, got %v", err)
	}
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict kind")
	}
	if _, ok := repo.habits[habit.ID]; !ok {
		t.Fatalf("expected habit kept")
	}

	repo.refs[habit.ID] = 0
	if err := svc.DeletePersonal(context.Background(), "user-1", habit.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if _, ok := repo.habits[habit.ID]; ok {
		t.Fatalf("expected habit deleted")
	}
}

func TestListAvailableForDayExcludesScheduledAndForeign(t *testing.T) {
	repo := newFakeHabitsRepo()
	svc := NewService(repo)
	own, _ := svc.CreatePersonal(context.Background(), "user-1", "Stretch")
	_, _ = svc.CreatePersonal(context.Background(), "user-2", "Secret habit")
	repo.schedule("user-1", 1, globalReadingID)

	available, err := svc.ListAvailableForDay(context.Background(), "user-1", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ids := make(map[string]bool, len(available))
	for _, habit := range available {
		ids[habit.ID] = true
	}
	if ids[globalReadingID] {
		t.Fatalf("expected scheduled habit excluded")
	}
	if !ids[globalWaterID] || !ids[own.ID] {
		t.Fatalf("expected global and own habits, got %v", available)
	}
	if len(available) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(available))
	}

	other, _ := svc.ListAvailableForDay(context.Background(), "user-1", 2)
	if len(other) != 3 {
		t.Fatalf("expected 3 habits on an empty day, got %d", len(other))
	}
}

func TestListAvailableForDayValidatesWeekday(t *testing.T) {
	svc := NewService(newFakeHabitsRepo())

	for _, weekday := range []int{-1, 7} {
		_, err := svc.ListAvailableForDay(context.Background(), "user-1", weekday)
		if !errors.Is(err, calendar.ErrInvalidWeekday) {
			t.Fatalf("expected ErrInvalidWeekday for %d, got %v", weekday, err)
		}
	}
}
