package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/NikhilaRaj7337/uga-nutrition-app/config"
	"github.com/NikhilaRaj7337/uga-nutrition-app/llm"
	"github.com/NikhilaRaj7337/uga-nutrition-app/middleware"
	"github.com/NikhilaRaj7337/uga-nutrition-app/services"
	"github.com/NikhilaRaj7337/uga-nutrition-app/session"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Shared handler dependencies, set once at startup.
var (
	cfg        *config.Config
	store      *session.Store
	catalog    *services.Catalog
	advisor    *services.Advisor
	baseClient *llm.Client
)

// Init wires the handler package. Call before mounting routes.
func Init(c *config.Config, s *session.Store, cat *services.Catalog, adv *services.Advisor, client *llm.Client) {
	cfg = c
	store = s
	catalog = cat
	advisor = adv
	baseClient = client
}

// getState pulls the session state the middleware resolved. A nil
// return means the route was mounted outside the session group.
func getState(r *http.Request) *session.State {
	state, _ := r.Context().Value(middleware.StateContextKey).(*session.State)
	return state
}

func getToken(r *http.Request) string {
	token, _ := r.Context().Value(middleware.TokenContextKey).(string)
	return token
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// sessionClient picks the LLM client for a request: the session's
// runtime credential wins over the configured one. Caller holds the
// state lock.
func sessionClient(state *session.State) services.ChatCompleter {
	if baseClient != nil && state.APIKey != "" {
		return baseClient.WithAPIKey(state.APIKey)
	}
	if baseClient != nil && baseClient.Available() {
		return baseClient
	}
	return nil
}
