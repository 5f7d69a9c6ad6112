package user

import "habit-tracker-go/internal/domain/apperror"

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

var (
	ErrUsernameRequired   = apperror.New(apperror.ErrValidation, "username is required")
	ErrPasswordRequired   = apperror.New(apperror.ErrValidation, "password is required")
	ErrPasswordTooLong    = apperror.New(apperror.ErrValidation, "password must be at most 72 bytes")
	ErrUsernameTaken      = apperror.New(apperror.ErrConflict, "username already exists")
	ErrInvalidCredentials = apperror.New(apperror.ErrUnauthenticated, "invalid credentials")
	ErrUserNotFound       = apperror.New(apperror.ErrNotFoundOrForbidden, "user not found")
)
