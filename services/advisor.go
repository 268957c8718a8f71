package services

import (
	"context"

	"github.com/NikhilaRaj7337/uga-nutrition-app/llm"
	"github.com/NikhilaRaj7337/uga-nutrition-app/logger"
	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

// Citation strings attached to advisor replies.
const (
	citationSupport  = "UGA Student Support Services"
	citationLLM      = "UGA Dining Services Data & Nutrition Guidelines"
	citationMenu     = "UGA Dining Services Menu"
	citationFoodLog  = "Calculated from your food log"
	historyWindowLen = 10
)

// ChatCompleter is the slice of llm.Client the advisor needs; tests
// substitute a stub.
type ChatCompleter interface {
	Available() bool
	Chat(ctx context.Context, messages []llm.Message) (string, error)
}

// AdvisorContext is the session snapshot a reply is grounded in. Nil
// fields render as "Not set" rather than failing.
type AdvisorContext struct {
	Profile     *models.UserProfile
	Goal        *models.Goal
	Targets     *models.DailyTargets
	TodayLog    []*models.LogEntry
	TodayTotals DayTotals
}

// AdvisorReply is what the chat view renders.
type AdvisorReply struct {
	Message  string `json:"message"`
	Citation string `json:"citation"`
	Success  bool   `json:"success"`
}

// Advisor answers free-text nutrition questions: a safety pre-filter,
// then the LLM when a credential is configured, then keyword-template
// fallback. It never returns an error to the caller; every failure
// path degrades to a templated reply.
type Advisor struct {
	catalog *Catalog
}

func NewAdvisor(catalog *Catalog) *Advisor {
	return &Advisor{catalog: catalog}
}

// Respond produces a reply for userMessage. client may be nil when no
// credential exists at all.
func (a *Advisor) Respond(ctx context.Context, client ChatCompleter, userMessage string, actx AdvisorContext, history []models.ChatMessage) AdvisorReply {
	// Concerning language short-circuits everything, including the
	// LLM: the fixed support message must not be paraphrased away.
	if msg := checkConcerningContent(userMessage); msg != "" {
		return AdvisorReply{Message: msg, Citation: citationSupport, Success: true}
	}

	if client != nil && client.Available() {
		text, err := a.askLLM(ctx, client, userMessage, actx, history)
		if err == nil {
			return AdvisorReply{Message: text, Citation: citationLLM, Success: true}
		}
		// Operator-visible; the user only ever sees the fallback.
		logger.Error("advisor LLM request failed, using fallback", "error", err)
	}

	return a.fallback(userMessage, actx)
}

func (a *Advisor) askLLM(ctx context.Context, client ChatCompleter, userMessage string, actx AdvisorContext, history []models.ChatMessage) (string, error) {
	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "system", Content: "## Current Context:\n" + a.buildContextBlock(actx)},
	}

	// Last N turns keep the request inside the model's window.
	start := 0
	if len(history) > historyWindowLen {
		start = len(history) - historyWindowLen
	}
	for _, m := range history[start:] {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	messages = append(messages, llm.Message{Role: "user", Content: userMessage})
	return client.Chat(ctx, messages)
}
