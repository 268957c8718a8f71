package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/NikhilaRaj7337/uga-nutrition-app/config"
	"github.com/NikhilaRaj7337/uga-nutrition-app/controllers"
	"github.com/NikhilaRaj7337/uga-nutrition-app/jobs"
	"github.com/NikhilaRaj7337/uga-nutrition-app/llm"
	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
	"github.com/NikhilaRaj7337/uga-nutrition-app/routes"
	"github.com/NikhilaRaj7337/uga-nutrition-app/services"
	"github.com/NikhilaRaj7337/uga-nutrition-app/session"
)

func main() {
	// Initialize Structured Logger
	logger.Init()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	cfg, err := config.Load(config.GetEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Menu catalog: file source when configured, embedded seed otherwise
	catalog, err := services.NewCatalog(services.NewMenuSource(cfg.Catalog.MenuPath))
	if err != nil {
		logger.Error("Failed to load menu catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("Menu catalog loaded", "items", len(catalog.Items()))

	store := session.NewStore(cfg.Session.Secret, cfg.SessionTTL())
	advisor := services.NewAdvisor(catalog)
	client := llm.NewClient(cfg.LLM)
	if !client.Available() {
		logger.Warn("No LLM credential configured, advisor will use keyword fallback")
	}

	controllers.Init(cfg, store, catalog, advisor, client)

	// Background schedules: nightly menu refresh, hourly session sweep
	scheduler, err := jobs.NewScheduler(cfg.Catalog.RefreshSchedule, catalog, store)
	if err != nil {
		logger.Error("Failed to set up scheduler", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup Router
	r := routes.SetupRouter(cfg, store)

	logger.Info("Server starting", "port", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
	}
}
