package handler

import (
	"net/http"

	"habit-tracker-go/internal/calendar"
	reportsdomain "habit-tracker-go/internal/domain/reports"
)

type monthlyReportResponse struct {
	Month          string                             `json:"month"`
	From           string                             `json:"from"`
	To             string                             `json:"to"`
	TrackedDays    int64                              `json:"tracked_days"`
	TotalTasks     int64                              `json:"total_tasks"`
	CompletedTasks int64                              `json:"completed_tasks"`
	CompletionRate float64                            `json:"completion_rate"`
	Habits         map[string]reportsdomain.HabitStat `json:"habits"`
}

func (h *Handlers) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	month, err := monthParam(r)
	if err != nil {
		h.writeServiceError(w, r, "reports.monthly", err, "user_id", user.ID)
		return
	}

	report, err := h.Reports.Monthly(r.Context(), user.ID, month)
	if err != nil {
		h.writeServiceError(w, r, "reports.monthly", err, "user_id", user.ID, "month", month.String())
		return
	}

	writeJSON(w, http.StatusOK, monthlyReportResponse{
		Month:          report.Month,
		From:           calendar.FormatDate(report.From),
		To:             calendar.FormatDate(report.To),
		TrackedDays:    report.TrackedDays,
		TotalTasks:     report.TotalTasks,
		CompletedTasks: report.CompletedTasks,
		CompletionRate: report.CompletionRate,
		Habits:         report.Habits,
	})
}
