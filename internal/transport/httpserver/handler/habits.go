package handler

import (
	"net/http"
	"time"

	habitsdomain "habit-tracker-go/internal/domain/habits"
)

type habitRequest struct {
	Name string `json:"name"`
}

type habitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Scope     string    `json:"scope"`
	OwnerID   *string   `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type habitListResponse struct {
	Items []habitResponse `json:"items"`
}

func mapHabit(habit habitsdomain.Habit) habitResponse {
	return habitResponse{
		ID:        habit.ID,
		Name:      habit.Name,
		Scope:     string(habit.Scope),
		OwnerID:   habit.OwnerID,
		CreatedAt: habit.CreatedAt,
	}
}

func mapHabits(habits []habitsdomain.Habit) habitListResponse {
	items := make([]habitResponse, 0, len(habits))
	for _, habit := range habits {
		items = append(items, mapHabit(habit))
	}
	return habitListResponse{Items: items}
}

func (h *Handlers) ListHabits(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	habits, err := h.Habits.ListVisible(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, "habits.list", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, mapHabits(habits))
}

func (h *Handlers) ListPersonalHabits(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	habits, err := h.Habits.ListPersonal(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, "habits.list_personal", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, mapHabits(habits))
}

func (h *Handlers) CreatePersonalHabit(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req habitRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, r, "habits.create", err, "user_id", user.ID)
		return
	}

	habit, err := h.Habits.CreatePersonal(r.Context(), user.ID, req.Name)
	if err != nil {
		h.writeServiceError(w, r, "habits.create", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, mapHabit(*habit))
}

func (h *Handlers) RenamePersonalHabit(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	habitID := habitIDParam(r)

	var req habitRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, r, "habits.rename", err, "user_id", user.ID, "habit_id", habitID)
		return
	}

	habit, err := h.Habits.RenamePersonal(r.Context(), user.ID, habitID, req.Name)
	if err != nil {
		h.writeServiceError(w, r, "habits.rename", err, "user_id", user.ID, "habit_id", habitID)
		return
	}

	writeJSON(w, http.StatusOK, mapHabit(*habit))
}

func (h *Handlers) DeletePersonalHabit(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	habitID := habitIDParam(r)

	if err := h.Habits.DeletePersonal(r.Context(), user.ID, habitID); err != nil {
		h.writeServiceError(w, r, "habits.delete", err, "user_id", user.ID, "habit_id", habitID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
