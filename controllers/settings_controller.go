package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
)

type SetCredentialRequest struct {
	APIKey string `json:"api_key"`
}

type SettingsResponse struct {
	CredentialSet bool   `json:"credential_set"`
	Model         string `json:"model"`
}

// SetCredential stores a session-scoped LLM API key. An empty key
// clears the override and falls back to the server-configured one.
func SetCredential(w http.ResponseWriter, r *http.Request) {
	state := getState(r)

	var req SetCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state.Lock()
	state.APIKey = strings.TrimSpace(req.APIKey)
	cleared := state.APIKey == ""
	state.Unlock()

	if cleared {
		logger.Info("Session credential cleared")
		writeJSON(w, http.StatusOK, map[string]string{"message": "Credential cleared"})
		return
	}
	logger.Info("Session credential set")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Credential saved"})
}

// GetSettings reports whether the advisor has a working credential.
// The key itself is never echoed back.
func GetSettings(w http.ResponseWriter, r *http.Request) {
	state := getState(r)

	state.Lock()
	hasSessionKey := state.APIKey != ""
	state.Unlock()

	writeJSON(w, http.StatusOK, SettingsResponse{
		CredentialSet: hasSessionKey || (baseClient != nil && baseClient.Available()),
		Model:         cfg.LLM.Model,
	})
}
