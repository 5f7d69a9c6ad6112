package handler

import (
	"net/http"
	"strings"

	"habit-tracker-go/internal/calendar"
	templatesdomain "habit-tracker-go/internal/domain/templates"
)

type scheduleHabitRequest struct {
	HabitID string `json:"habit_id"`
}

type scheduledHabitResponse struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	Scope   string `json:"scope"`
}

type weekTemplatesResponse struct {
	Days map[int][]scheduledHabitResponse `json:"days"`
}

type dayTemplateResponse struct {
	Weekday int                      `json:"weekday"`
	Items   []scheduledHabitResponse `json:"items"`
}

type availableHabitsResponse struct {
	Weekday int             `json:"weekday"`
	Items   []habitResponse `json:"items"`
}

func mapScheduled(scheduled []templatesdomain.ScheduledHabit) []scheduledHabitResponse {
	items := make([]scheduledHabitResponse, 0, len(scheduled))
	for _, item := range scheduled {
		items = append(items, scheduledHabitResponse{
			HabitID: item.HabitID,
			Name:    item.Name,
			Scope:   string(item.Scope),
		})
	}
	return items
}

func (h *Handlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	week, err := h.Templates.ListAll(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, "templates.list", err, "user_id", user.ID)
		return
	}

	days := make(map[int][]scheduledHabitResponse, len(week))
	for weekday := calendar.MinWeekday; weekday <= calendar.MaxWeekday; weekday++ {
		days[weekday] = mapScheduled(week[weekday])
	}
	writeJSON(w, http.StatusOK, weekTemplatesResponse{Days: days})
}

func (h *Handlers) GetDayTemplate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	weekday, err := weekdayParam(r)
	if err != nil {
		h.writeServiceError(w, r, "templates.get_day", err, "user_id", user.ID)
		return
	}

	h.writeDayTemplate(w, r, "templates.get_day", user.ID, weekday, http.StatusOK)
}

func (h *Handlers) ListAvailableHabits(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	weekday, err := weekdayParam(r)
	if err != nil {
		h.writeServiceError(w, r, "templates.available", err, "user_id", user.ID)
		return
	}

	habits, err := h.Habits.ListAvailableForDay(r.Context(), user.ID, weekday)
	if err != nil {
		h.writeServiceError(w, r, "templates.available", err, "user_id", user.ID, "weekday", weekday)
		return
	}

	writeJSON(w, http.StatusOK, availableHabitsResponse{
		Weekday: weekday,
		Items:   mapHabits(habits).Items,
	})
}

func (h *Handlers) AddHabitToTemplate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	weekday, err := weekdayParam(r)
	if err != nil {
		h.writeServiceError(w, r, "templates.add_habit", err, "user_id", user.ID)
		return
	}

	var req scheduleHabitRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, r, "templates.add_habit", err, "user_id", user.ID)
		return
	}
	habitID := strings.TrimSpace(req.HabitID)
	if habitID == "" {
		h.writeServiceError(w, r, "templates.add_habit", errHabitIDRequired, "user_id", user.ID)
		return
	}

	if err := h.Templates.AddToDay(r.Context(), user.ID, weekday, habitID); err != nil {
		h.writeServiceError(w, r, "templates.add_habit", err, "user_id", user.ID, "weekday", weekday, "habit_id", habitID)
		return
	}

	h.writeDayTemplate(w, r, "templates.add_habit", user.ID, weekday, http.StatusCreated)
}

func (h *Handlers) RemoveHabitFromTemplate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	weekday, err := weekdayParam(r)
	if err != nil {
		h.writeServiceError(w, r, "templates.remove_habit", err, "user_id", user.ID)
		return
	}
	habitID := habitIDParam(r)

	if err := h.Templates.RemoveFromDay(r.Context(), user.ID, weekday, habitID); err != nil {
		h.writeServiceError(w, r, "templates.remove_habit", err, "user_id", user.ID, "weekday", weekday, "habit_id", habitID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeDayTemplate(w http.ResponseWriter, r *http.Request, action, userID string, weekday, status int) {
	scheduled, err := h.Templates.ListForDay(r.Context(), userID, weekday)
	if err != nil {
		h.writeServiceError(w, r, action, err, "user_id", userID, "weekday", weekday)
		return
	}

	writeJSON(w, status, dayTemplateResponse{
		Weekday: weekday,
		Items:   mapScheduled(scheduled),
	})
}
