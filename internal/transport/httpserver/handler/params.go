package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"habit-tracker-go/internal/calendar"
	"habit-tracker-go/internal/domain/apperror"
	"habit-tracker-go/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
)

var (
	errInvalidBody     = apperror.New(apperror.ErrValidation, "invalid request body")
	errHabitIDRequired = apperror.New(apperror.ErrValidation, "habit_id is required")
	errRangeRequired   = apperror.New(apperror.ErrValidation, "from and to are required")
)

func (h *Handlers) requireUser(w http.ResponseWriter, r *http.Request) (middleware.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return middleware.User{}, false
	}
	return user, true
}

func weekdayParam(r *http.Request) (int, error) {
	return calendar.ParseWeekday(chi.URLParam(r, "weekday"))
}

func dateParam(r *http.Request) (time.Time, error) {
	return calendar.ParseDate(chi.URLParam(r, "date"))
}

func monthParam(r *http.Request) (calendar.YearMonth, error) {
	return calendar.ParseYearMonth(chi.URLParam(r, "month"))
}

func habitIDParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "habit_id"))
}

func dateRangeQuery(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()
	rawFrom := strings.TrimSpace(query.Get("from"))
	rawTo := strings.TrimSpace(query.Get("to"))
	if rawFrom == "" || rawTo == "" {
		return time.Time{}, time.Time{}, errRangeRequired
	}

	from, err := calendar.ParseDate(rawFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := calendar.ParseDate(rawTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// decodeBody reports malformed JSON as a validation error.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := decodeJSON(r, dst); err != nil {
		return errors.Join(errInvalidBody, err)
	}
	return nil
}
