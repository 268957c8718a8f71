package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

type UpdateProfileRequest struct {
	WeightLbs           float64  `json:"weight_lbs"`
	HeightFt            int      `json:"height_ft"`
	HeightIn            int      `json:"height_in"`
	ActivityLevel       string   `json:"activity_level"`
	DiningPreference    []string `json:"dining_preference"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

func GetProfile(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	state.Lock()
	defer state.Unlock()

	if state.Profile == nil {
		writeError(w, http.StatusNotFound, "Profile not set")
		return
	}
	writeJSON(w, http.StatusOK, state.Profile)
}

// UpdateProfile replaces the profile wholesale. Existing targets are
// NOT recomputed; they stay frozen to the goal that created them.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	state := getState(r)

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	activity, ok := models.ParseActivityLevel(req.ActivityLevel)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown activity level")
		return
	}

	var halls []models.DiningHall
	for _, h := range req.DiningPreference {
		hall, ok := models.ParseDiningHall(h)
		if !ok {
			writeError(w, http.StatusBadRequest, "Unknown dining hall: "+h)
			return
		}
		halls = append(halls, hall)
	}

	profile, err := models.NewUserProfile(req.WeightLbs, req.HeightFt, req.HeightIn, activity, halls, req.DietaryRestrictions)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to build profile", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	state.Lock()
	state.Profile = profile
	state.Unlock()

	logger.Info("Profile updated", "weight_lbs", profile.WeightLbs, "activity", profile.Activity)
	writeJSON(w, http.StatusOK, profile)
}

// ResetData is Settings "Clear All Data": profile, goal, targets,
// food log, and chat history all go at once.
func ResetData(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	state.Lock()
	state.Reset()
	state.Unlock()

	logger.Info("Session data cleared")
	writeJSON(w, http.StatusOK, map[string]string{"message": "All data cleared"})
}
