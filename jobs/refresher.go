// Package jobs holds the background schedules: the nightly menu
// reload and the hourly sweep of expired sessions.
package jobs

import (
	"github.com/robfig/cron/v3"

	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
	"github.com/NikhilaRaj7337/uga-nutrition-app/services"
	"github.com/NikhilaRaj7337/uga-nutrition-app/session"
)

type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers the catalog refresh on the configured cron
// expression and the session sweep hourly. A failed reload keeps the
// previous menu; there is always something to serve.
func NewScheduler(schedule string, catalog *services.Catalog, store *session.Store) (*Scheduler, error) {
	c := cron.New()

	if _, err := c.AddFunc(schedule, func() {
		if err := catalog.Reload(); err != nil {
			logger.Error("Catalog refresh failed, keeping previous menu", "error", err)
			return
		}
		logger.Info("Catalog refreshed", "items", len(catalog.Items()))
	}); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc("@hourly", func() {
		if removed := store.Sweep(); removed > 0 {
			logger.Info("Expired sessions swept", "removed", removed, "live_sessions", store.Len())
		}
	}); err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
