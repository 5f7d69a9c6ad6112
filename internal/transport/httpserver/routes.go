package httpserver

import (
	"net/http"

	"habit-tracker-go/internal/config"
	"habit-tracker-go/internal/transport/httpserver/handler"
	authmw "habit-tracker-go/internal/transport/httpserver/middleware"
	"habit-tracker-go/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, tokens authmw.TokenVerifier, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(RequestTimeout))
	r.Use(authmw.NewCORS(cfg.CORS.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/signup", handlers.SignUp)
		r.Post("/auth/login", handlers.Login)

		auth := authmw.NewTokenAuth(tokens, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)
			r.Post("/auth/logout", handlers.Logout)

			r.Get("/habits", handlers.ListHabits)
			r.Get("/habits/personal", handlers.ListPersonalHabits)
			r.Post("/habits/personal", handlers.CreatePersonalHabit)
			r.Put("/habits/personal/{habit_id}", handlers.RenamePersonalHabit)
			r.Delete("/habits/personal/{habit_id}", handlers.DeletePersonalHabit)

			r.Get("/templates", handlers.ListTemplates)
			r.Get("/templates/{weekday}", handlers.GetDayTemplate)
			r.Get("/templates/{weekday}/available-habits", handlers.ListAvailableHabits)
			r.Post("/templates/{weekday}/habits", handlers.AddHabitToTemplate)
			r.Delete("/templates/{weekday}/habits/{habit_id}", handlers.RemoveHabitFromTemplate)

			r.Get("/daily", handlers.ListTrackedDays)
			r.Post("/daily/{date}", handlers.StartDay)
			r.Get("/daily/{date}", handlers.GetDay)
			r.Delete("/daily/{date}", handlers.DeleteDay)
			r.Post("/daily/{date}/habits", handlers.AddHabitToDay)
			r.Put("/daily/{date}/habits/{habit_id}", handlers.SetHabitCompletion)
			r.Delete("/daily/{date}/habits/{habit_id}", handlers.RemoveHabitFromDay)

			r.Get("/reports/monthly/{month}", handlers.MonthlyReport)
		})
	})

	return r
}
