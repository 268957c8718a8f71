package controllers

import (
	"net/http"
	"strconv"
	"time"
)

// GetWeeklyProgress aggregates the log per date over the lookback
// window. Dates with no entries are omitted rather than zero-filled,
// so row count doubles as "days logged".
func GetWeeklyProgress(w http.ResponseWriter, r *http.Request) {
	state := getState(r)

	days := 7
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 || parsed > 90 {
			writeError(w, http.StatusBadRequest, "Invalid days, expected 1-90")
			return
		}
		days = parsed
	}

	state.Lock()
	rows := state.Log.WeeklySeries(time.Now(), days)
	targets := state.Targets
	state.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"days":        days,
		"days_logged": len(rows),
		"rows":        rows,
		"targets":     targets,
	})
}
