package habits

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListVisible(ctx context.Context, userID string) ([]Habit, error)
	ListPersonal(ctx context.Context, userID string) ([]Habit, error)
	ListAvailableForDay(ctx context.Context, userID string, weekday int) ([]Habit, error)
	CreateHabit(ctx context.Context, habit *Habit) error
	// RenamePersonal and DeletePersonal only touch personal habits owned by
	// userID and report whether a row matched.
	RenamePersonal(ctx context.Context, userID, habitID, name string) (bool, error)
	DeletePersonal(ctx context.Context, userID, habitID string) (bool, error)
	GetPersonal(ctx context.Context, userID, habitID string) (*Habit, error)
	CountReferences(ctx context.Context, habitID string) (int64, error)
}
