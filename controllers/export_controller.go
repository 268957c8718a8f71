package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
	"github.com/NikhilaRaj7337/uga-nutrition-app/services"
)

// ExportLogCSV streams the selected day's log as CSV. Values are not
// escaped; dish names with commas will shift columns.
func ExportLogCSV(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	date := queryDate(r)

	state.Lock()
	entries := state.Log.EntriesFor(date)
	state.Unlock()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=food_log_%s.csv", date))
	io.WriteString(w, services.ExportLogCSV(entries))
}

// ExportBackup dumps the whole session as pretty JSON. This is the
// only way state survives the session: nothing is stored server-side.
func ExportBackup(w http.ResponseWriter, r *http.Request) {
	state := getState(r)

	state.Lock()
	backup := services.Backup{
		Profile: state.Profile,
		Goals:   state.Goal,
		Targets: state.Targets,
		FoodLog: state.Log.Entries(),
	}
	state.Unlock()

	raw, err := services.ExportBackup(backup)
	if err != nil {
		logger.Error("Failed to build backup", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to build backup")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=nutrition_backup.json")
	w.Write(raw)
}

// ImportBackup restores a previously exported backup into the current
// session, replacing whatever is there.
func ImportBackup(w http.ResponseWriter, r *http.Request) {
	state := getState(r)

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	backup, err := services.ParseBackup(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid backup document")
		return
	}

	state.Lock()
	state.Profile = backup.Profile
	state.Goal = backup.Goals
	state.Targets = backup.Targets
	state.Log.Replace(backup.FoodLog)
	state.Unlock()

	logger.Info("Backup restored", "entries", len(backup.FoodLog))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Backup restored"})
}
