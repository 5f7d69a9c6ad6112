package user

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// CreateUser returns ErrUsernameTaken when the username is already used.
	CreateUser(ctx context.Context, user *User) error
	// CreateWeekTemplates inserts the seven empty weekly templates of userID.
	CreateWeekTemplates(ctx context.Context, userID string) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
}
