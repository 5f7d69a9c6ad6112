package handler

import (
	"net/http"
	"strings"
	"time"

	"habit-tracker-go/internal/calendar"
	"habit-tracker-go/internal/domain/apperror"
	trackingdomain "habit-tracker-go/internal/domain/tracking"
)

var errCompletedRequired = apperror.New(apperror.ErrValidation, "completed must be a boolean")

type trackHabitRequest struct {
	HabitID string `json:"habit_id"`
}

type completionRequest struct {
	Completed *bool `json:"completed"`
}

type dayEntryResponse struct {
	HabitID   string `json:"habit_id"`
	Name      string `json:"name"`
	Scope     string `json:"scope"`
	Completed bool   `json:"completed"`
}

type dayResponse struct {
	Date    string             `json:"date"`
	Weekday int                `json:"weekday"`
	Entries []dayEntryResponse `json:"entries"`
}

type daySummaryResponse struct {
	Date      string `json:"date"`
	Completed int64  `json:"completed"`
	Total     int64  `json:"total"`
}

type daySummaryListResponse struct {
	Items []daySummaryResponse `json:"items"`
}

func mapDay(day *trackingdomain.Day) dayResponse {
	entries := make([]dayEntryResponse, 0, len(day.Entries))
	for _, entry := range day.Entries {
		entries = append(entries, dayEntryResponse{
			HabitID:   entry.HabitID,
			Name:      entry.Name,
			Scope:     string(entry.Scope),
			Completed: entry.Completed,
		})
	}
	return dayResponse{
		Date:    calendar.FormatDate(day.Tracking.Date),
		Weekday: calendar.WeekdayOf(day.Tracking.Date),
		Entries: entries,
	}
}

func (h *Handlers) ListTrackedDays(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	from, to, err := dateRangeQuery(r)
	if err != nil {
		h.writeServiceError(w, r, "daily.list", err, "user_id", user.ID)
		return
	}

	days, err := h.Tracking.ListDays(r.Context(), user.ID, from, to)
	if err != nil {
		h.writeServiceError(w, r, "daily.list", err, "user_id", user.ID)
		return
	}

	items := make([]daySummaryResponse, 0, len(days))
	for _, day := range days {
		items = append(items, daySummaryResponse{
			Date:      calendar.FormatDate(day.Date),
			Completed: day.Completed,
			Total:     day.Total,
		})
	}
	writeJSON(w, http.StatusOK, daySummaryListResponse{Items: items})
}

func (h *Handlers) StartDay(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	date, err := dateParam(r)
	if err != nil {
		h.writeServiceError(w, r, "daily.start", err, "user_id", user.ID)
		return
	}

	day, err := h.Tracking.Materialize(r.Context(), user.ID, date)
	if err != nil {
		h.writeServiceError(w, r, "daily.start", err, "user_id", user.ID, "date", calendar.FormatDate(date))
		return
	}

	h.log.Debug("daily.start: materialized", "user_id", user.ID, "date", calendar.FormatDate(date), "entries", len(day.Entries))
	writeJSON(w, http.StatusCreated, mapDay(day))
}

func (h *Handlers) GetDay(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	date, err := dateParam(r)
	if err != nil {
		h.writeServiceError(w, r, "daily.get", err, "user_id", user.ID)
		return
	}

	h.writeDay(w, r, "daily.get", user.ID, date, http.StatusOK)
}

func (h *Handlers) DeleteDay(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	date, err := dateParam(r)
	if err != nil {
		h.writeServiceError(w, r, "daily.delete", err, "user_id", user.ID)
		return
	}

	if err := h.Tracking.DeleteDay(r.Context(), user.ID, date); err != nil {
		h.writeServiceError(w, r, "daily.delete", err, "user_id", user.ID, "date", calendar.FormatDate(date))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AddHabitToDay(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	date, err := dateParam(r)
	if err != nil {
		h.writeServiceError(w, r, "daily.add_habit", err, "user_id", user.ID)
		return
	}

	var req trackHabitRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, r, "daily.add_habit", err, "user_id", user.ID)
		return
	}
	habitID := strings.TrimSpace(req.HabitID)
	if habitID == "" {
		h.writeServiceError(w, r, "daily.add_habit", errHabitIDRequired, "user_id", user.ID)
		return
	}

	if err := h.Tracking.AddHabit(r.Context(), user.ID, date, habitID); err != nil {
		h.writeServiceError(w, r, "daily.add_habit", err, "user_id", user.ID, "date", calendar.FormatDate(date), "habit_id", habitID)
		return
	}

	h.writeDay(w, r, "daily.add_habit", user.ID, date, http.StatusCreated)
}

func (h *Handlers) SetHabitCompletion(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	date, err := dateParam(r)
	if err != nil {
		h.writeServiceError(w, r, "daily.set_completion", err, "user_id", user.ID)
		return
	}
	habitID := habitIDParam(r)

	var req completionRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, r, "daily.set_completion", errCompletedRequired, "user_id", user.ID, "decode_err", err)
		return
	}
	if req.Completed == nil {
		h.writeServiceError(w, r, "daily.set_completion", errCompletedRequired, "user_id", user.ID)
		return
	}

	if err := h.Tracking.SetCompletion(r.Context(), user.ID, date, habitID, *req.Completed); err != nil {
		h.writeServiceError(w, r, "daily.set_completion", err, "user_id", user.ID, "date", calendar.FormatDate(date), "habit_id", habitID)
		return
	}

	h.writeDay(w, r, "daily.set_completion", user.ID, date, http.StatusOK)
}

func (h *Handlers) RemoveHabitFromDay(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	date, err := dateParam(r)
	if err != nil {
		h.writeServiceError(w, r, "daily.remove_habit", err, "user_id", user.ID)
		return
	}
	habitID := habitIDParam(r)

	if err := h.Tracking.RemoveHabit(r.Context(), user.ID, date, habitID); err != nil {
		h.writeServiceError(w, r, "daily.remove_habit", err, "user_id", user.ID, "date", calendar.FormatDate(date), "habit_id", habitID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeDay(w http.ResponseWriter, r *http.Request, action, userID string, date time.Time, status int) {
	day, err := h.Tracking.GetDay(r.Context(), userID, date)
	if err != nil {
		h.writeServiceError(w, r, action, err, "user_id", userID, "date", calendar.FormatDate(date))
		return
	}

	writeJSON(w, status, mapDay(day))
}
