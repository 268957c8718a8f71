package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
	"github.com/NikhilaRaj7337/uga-nutrition-app/services"
)

type CreateGoalRequest struct {
	GoalType string `json:"goal_type"`
}

type GoalResponse struct {
	Goal    *models.Goal         `json:"goal"`
	Targets *models.DailyTargets `json:"targets"`
}

// CreateGoal sets the active goal and freezes daily targets computed
// from the profile as it stands right now. Later profile edits do not
// move the targets; picking a goal again does.
func CreateGoal(w http.ResponseWriter, r *http.Request) {
	state := getState(r)

	var req CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goalType, ok := models.ParseGoalType(req.GoalType)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown goal type")
		return
	}

	state.Lock()
	defer state.Unlock()

	if state.Profile == nil {
		writeError(w, http.StatusConflict, "Set a profile before choosing a goal")
		return
	}

	p := state.Profile
	targets, err := services.ComputeTargets(p.WeightLbs, p.HeightFt, p.HeightIn, p.Activity, goalType)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to compute targets", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute targets")
		return
	}

	state.Goal = &models.Goal{Type: goalType, CreatedAt: time.Now()}
	state.Targets = &targets

	logger.Info("Goal created", "goal_type", goalType, "calories", targets.Calories, "protein", targets.Protein)
	writeJSON(w, http.StatusCreated, GoalResponse{Goal: state.Goal, Targets: state.Targets})
}

func GetGoals(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	state.Lock()
	defer state.Unlock()

	if state.Goal == nil {
		writeError(w, http.StatusNotFound, "No goal set")
		return
	}
	writeJSON(w, http.StatusOK, GoalResponse{Goal: state.Goal, Targets: state.Targets})
}

// DeleteGoal clears the goal and its targets but leaves the profile,
// log, and chat history alone.
func DeleteGoal(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	state.Lock()
	state.Goal = nil
	state.Targets = nil
	state.Unlock()

	logger.Info("Goal cleared")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal cleared"})
}

func GetTargets(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	state.Lock()
	defer state.Unlock()

	if state.Targets == nil {
		writeError(w, http.StatusNotFound, "No targets set")
		return
	}
	writeJSON(w, http.StatusOK, state.Targets)
}
