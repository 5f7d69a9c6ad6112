package reports

import (
	"context"

	"habit-tracker-go/internal/calendar"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Monthly aggregates every tracked entry between the first and the last
// calendar day of month, both inclusive.
func (s *Service) Monthly(ctx context.Context, userID string, month calendar.YearMonth) (MonthlyReport, error) {
	from, to := month.Range()

	var (
		counts      []HabitCount
		trackedDays int64
	)
	err := s.repo.Snapshot(ctx, func(tx Repository) error {
		var err error
		if counts, err = tx.HabitCounts(ctx, userID, from, to); err != nil {
			return err
		}
		trackedDays, err = tx.TrackedDays(ctx, userID, from, to)
		return err
	})
	if err != nil {
		return MonthlyReport{}, err
	}

	report := MonthlyReport{
		Month:       month.String(),
		From:        from,
		To:          to,
		TrackedDays: trackedDays,
		Habits:      make(map[string]HabitStat, len(counts)),
	}

	for _, count := range counts {
		stat := report.Habits[count.Name]
		stat.Completed += count.Completed
		stat.Total += count.Total
		report.Habits[count.Name] = stat

		report.TotalTasks += count.Total
		report.CompletedTasks += count.Completed
	}

	if report.TotalTasks > 0 {
		report.CompletionRate = float64(report.CompletedTasks) / float64(report.TotalTasks)
	}

	return report, nil
}
