package habits

import "habit-tracker-go/internal/domain/apperror"

var (
	ErrNameRequired  = apperror.New(apperror.ErrValidation, "habit name is required")
	ErrHabitNotFound = apperror.New(apperror.ErrNotFoundOrForbidden, "personal habit not found")
	ErrHabitInUse    = apperror.New(apperror.ErrConflict, "habit is scheduled or tracked and cannot be deleted")
)
