package controllers

import (
	"net/http"

	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
)

type CreateSessionResponse struct {
	Token string `json:"token"`
}

// CreateSession starts a fresh empty session and hands back its
// bearer token. Public: this is the only unauthenticated mutation.
func CreateSession(w http.ResponseWriter, r *http.Request) {
	token, err := store.Create()
	if err != nil {
		logger.Error("Failed to create session", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	logger.Info("Session created", "live_sessions", store.Len())
	writeJSON(w, http.StatusCreated, CreateSessionResponse{Token: token})
}

// DeleteSession tears the caller's session down. All in-memory state
// is gone after this; anything not exported is lost.
func DeleteSession(w http.ResponseWriter, r *http.Request) {
	store.Delete(getToken(r))
	logger.Info("Session deleted", "live_sessions", store.Len())
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session deleted"})
}
