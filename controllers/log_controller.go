package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

type AddLogEntryRequest struct {
	ItemID   string  `json:"item_id"`
	Servings float64 `json:"servings"`
}

type UpdateLogEntryRequest struct {
	Servings float64 `json:"servings"`
}

// queryDate returns the date filter, defaulting to today.
func queryDate(r *http.Request) string {
	if d := r.URL.Query().Get("date"); d != "" {
		return d
	}
	return time.Now().Format("2006-01-02")
}

// AddLogEntry logs a catalog item at its current nutrition values.
// The entry keeps its own copy, so a later menu refresh never rewrites
// what was already eaten.
func AddLogEntry(w http.ResponseWriter, r *http.Request) {
	state := getState(r)

	var req AddLogEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, ok := catalog.Get(req.ItemID)
	if !ok {
		writeError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	state.Lock()
	defer state.Unlock()

	entry, err := state.Log.Add(&item, req.Servings, time.Now())
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to log item", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log item")
		return
	}

	logger.Info("Item logged", "item", entry.Name, "servings", entry.Servings)
	writeJSON(w, http.StatusCreated, entry)
}

func GetLog(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	date := queryDate(r)

	state.Lock()
	entries := state.Log.EntriesFor(date)
	state.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":    date,
		"entries": entries,
	})
}

func UpdateLogEntry(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	entryID := chi.URLParam(r, "entry_id")

	var req UpdateLogEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state.Lock()
	defer state.Unlock()

	if err := state.Log.SetServings(entryID, req.Servings); err != nil {
		if errors.Is(err, models.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusNotFound, "Log entry not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Servings updated"})
}

// DeleteLogEntry removes an entry. Deleting an ID that is already
// gone still succeeds; the end state is the same.
func DeleteLogEntry(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	entryID := chi.URLParam(r, "entry_id")

	state.Lock()
	state.Log.Remove(entryID)
	state.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "Log entry removed"})
}

func GetLogTotals(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	date := queryDate(r)

	state.Lock()
	totals := state.Log.TotalsFor(date)
	targets := state.Targets
	state.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":    date,
		"totals":  totals,
		"targets": targets,
	})
}
