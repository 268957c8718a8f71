package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/NikhilaRaj7337/uga-nutrition-app/config"
	"github.com/NikhilaRaj7337/uga-nutrition-app/controllers"
	"github.com/NikhilaRaj7337/uga-nutrition-app/middleware"
	"github.com/NikhilaRaj7337/uga-nutrition-app/session"
)

func SetupRouter(cfg *config.Config, store *session.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public
	r.Post("/session", controllers.CreateSession)
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Everything else needs a live session token
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(store))

		r.Delete("/session", controllers.DeleteSession)

		// Profile / onboarding
		r.Get("/profile", controllers.GetProfile)
		r.Put("/profile", controllers.UpdateProfile)
		r.Post("/reset", controllers.ResetData)

		// Goals and frozen targets
		r.Post("/goals", controllers.CreateGoal)
		r.Get("/goals", controllers.GetGoals)
		r.Delete("/goals", controllers.DeleteGoal)
		r.Get("/targets", controllers.GetTargets)

		// Menu explorer
		r.Get("/menu", controllers.GetMenu)
		r.Get("/menu/halls", controllers.GetHalls)
		r.Get("/menu/periods", controllers.GetPeriods)
		r.Get("/faqs", controllers.GetFAQs)

		// Food log
		r.Post("/log", controllers.AddLogEntry)
		r.Get("/log", controllers.GetLog)
		r.Patch("/log/{entry_id}", controllers.UpdateLogEntry)
		r.Delete("/log/{entry_id}", controllers.DeleteLogEntry)
		r.Get("/log/totals", controllers.GetLogTotals)

		// Progress
		r.Get("/progress/weekly", controllers.GetWeeklyProgress)

		// Export / restore
		r.Get("/export/log.csv", controllers.ExportLogCSV)
		r.Get("/export/backup", controllers.ExportBackup)
		r.Post("/import/backup", controllers.ImportBackup)

		// Advisor chat
		r.Post("/advisor/chat", controllers.Chat)
		r.Get("/advisor/history", controllers.GetChatHistory)
		r.Delete("/advisor/history", controllers.ClearChatHistory)

		// Settings
		r.Put("/settings/credential", controllers.SetCredential)
		r.Get("/settings", controllers.GetSettings)
	})

	return r
}
