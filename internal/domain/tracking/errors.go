package tracking

import "habit-tracker-go/internal/domain/apperror"

var (
	ErrTrackingExists      = apperror.New(apperror.ErrConflict, "habit tracking already exists for this date")
	ErrTrackingNotFound    = apperror.New(apperror.ErrNotFoundOrForbidden, "no tracking data found for this date")
	ErrEntryNotFound       = apperror.New(apperror.ErrNotFoundOrForbidden, "habit is not tracked on this date")
	ErrHabitAlreadyTracked = apperror.New(apperror.ErrConflict, "habit is already tracked on this date")
	ErrInvalidHabit        = apperror.New(apperror.ErrValidation, "the habit id is invalid or not available for this user")
)
