package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
	"github.com/NikhilaRaj7337/uga-nutrition-app/services"
)

type ChatRequest struct {
	Message    string `json:"message"`
	IncludeLog *bool  `json:"include_log,omitempty"`
}

// Chat answers one advisor turn and appends both sides to the session
// history. The advisor itself never fails; a missing credential or a
// dead LLM endpoint degrades to templated replies.
func Chat(w http.ResponseWriter, r *http.Request) {
	state := getState(r)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}
	includeLog := req.IncludeLog == nil || *req.IncludeLog

	state.Lock()
	defer state.Unlock()

	today := time.Now().Format("2006-01-02")
	actx := services.AdvisorContext{
		Profile: state.Profile,
		Goal:    state.Goal,
		Targets: state.Targets,
	}
	if includeLog {
		actx.TodayLog = state.Log.EntriesFor(today)
		actx.TodayTotals = state.Log.TotalsFor(today)
	}

	reply := advisor.Respond(r.Context(), sessionClient(state), req.Message, actx, state.ChatHistory)

	state.ChatHistory = append(state.ChatHistory,
		models.ChatMessage{Role: "user", Content: req.Message},
		models.ChatMessage{Role: "assistant", Content: reply.Message, Citation: reply.Citation},
	)

	logger.Info("Advisor reply", "citation", reply.Citation, "history_len", len(state.ChatHistory))
	writeJSON(w, http.StatusOK, reply)
}

func GetChatHistory(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	state.Lock()
	history := make([]models.ChatMessage, len(state.ChatHistory))
	copy(history, state.ChatHistory)
	state.Unlock()

	writeJSON(w, http.StatusOK, history)
}

func ClearChatHistory(w http.ResponseWriter, r *http.Request) {
	state := getState(r)
	state.Lock()
	state.ChatHistory = nil
	state.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "Chat history cleared"})
}
