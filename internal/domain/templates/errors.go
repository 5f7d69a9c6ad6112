package templates

import "habit-tracker-go/internal/domain/apperror"

var (
	ErrInvalidHabit     = apperror.New(apperror.ErrValidation, "the habit id is invalid or not available for this day")
	ErrTemplateNotFound = apperror.New(apperror.ErrNotFoundOrForbidden, "weekly template not found")
)
