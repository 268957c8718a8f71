package services

import (
	"fmt"
	"strings"

	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

const systemPrompt = `You are a friendly and knowledgeable nutrition assistant for University of Georgia students.
Your role is to help students achieve their nutrition goals using UGA Dining Services options.

## Your Capabilities:
1. Help students define nutrition goals (bulk/cut/maintenance, performance, energy, general health)
2. Propose daily targets (protein, calories, fiber, sodium)
3. Recommend specific meals from UGA Dining halls based on their menus
4. Reflect on logged meals and suggest adjustments
5. Answer general nutrition questions

## Important Guidelines:
- Always ground your meal recommendations in ACTUAL UGA Dining options provided in the context
- Be supportive and encouraging, never judgmental
- Use simple, actionable language
- When recommending meals, include specific items, dining halls, and meal periods
- Include approximate nutrition info when available
- Cite sources when providing nutrition advice (e.g., "According to UGA nutrition guidelines...")

## Safety Boundaries:
- You are NOT a medical professional - refer clinical questions to UGA's campus nutrition counseling
- Do NOT provide eating disorder coaching or extreme restriction advice
- If a user shows signs of disordered eating or risky behavior, respond supportively and recommend professional help
- Keep recommendations within safe, evidence-based ranges

## Response Format:
- Be conversational but informative
- Use bullet points for meal suggestions
- Include specific numbers (calories, protein grams) when available
- End with a helpful follow-up question or actionable next step`

// buildContextBlock serializes the session snapshot plus a digest of
// today's menu into the prompt's context section.
func (a *Advisor) buildContextBlock(actx AdvisorContext) string {
	var parts []string

	if p := actx.Profile; p != nil {
		halls := "Any"
		if len(p.DiningPreference) > 0 {
			labels := make([]string, len(p.DiningPreference))
			for i, h := range p.DiningPreference {
				labels[i] = h.Label()
			}
			halls = strings.Join(labels, ", ")
		}
		restrictions := "None"
		if len(p.DietaryRestrictions) > 0 {
			restrictions = strings.Join(p.DietaryRestrictions, ", ")
		}
		parts = append(parts, fmt.Sprintf(`## User Profile:
- Weight: %.0f lbs
- Activity Level: %s
- Preferred Dining Halls: %s
- Dietary Restrictions: %s`,
			p.WeightLbs, p.Activity.Label(), halls, restrictions))
	}

	if g := actx.Goal; g != nil {
		t := actx.Targets
		parts = append(parts, fmt.Sprintf(`## Current Goals:
- Primary Goal: %s
- Daily Calorie Target: %s kcal
- Daily Protein Target: %sg
- Daily Carb Target: %sg
- Daily Fat Target: %sg`,
			g.Type.Label(),
			targetOrNotSet(t, func(t *models.DailyTargets) int { return t.Calories }),
			targetOrNotSet(t, func(t *models.DailyTargets) int { return t.Protein }),
			targetOrNotSet(t, func(t *models.DailyTargets) int { return t.Carbs }),
			targetOrNotSet(t, func(t *models.DailyTargets) int { return t.Fat })))
	}

	var logLines []string
	for _, e := range actx.TodayLog {
		adj := e.AdjustedNutrition()
		logLines = append(logLines, fmt.Sprintf("- %s (%d cal, %.0fg protein) at %s", e.Name, adj.Calories, adj.Protein, e.Hall))
	}
	logText := "No items logged yet"
	if len(logLines) > 0 {
		logText = strings.Join(logLines, "\n")
	}
	parts = append(parts, fmt.Sprintf(`## Today's Food Log:
%s

## Today's Totals:
- Calories consumed: %.0f kcal
- Protein consumed: %.0fg`,
		logText, actx.TodayTotals.Calories, actx.TodayTotals.Protein))

	parts = append(parts, a.menuDigest())

	return strings.Join(parts, "\n\n")
}

func targetOrNotSet(t *models.DailyTargets, pick func(*models.DailyTargets) int) string {
	if t == nil {
		return "Not set"
	}
	return fmt.Sprintf("%d", pick(t))
}

// menuDigest renders today's catalog grouped by hall and meal period
// so the model recommends dishes that actually exist.
func (a *Advisor) menuDigest() string {
	var b strings.Builder
	b.WriteString("## Today's UGA Dining Options:")

	items := a.catalog.Items()
	for _, hall := range models.DiningHalls() {
		hallItems := FilterMenu(items, MenuQuery{Hall: hall})
		if len(hallItems) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n### %s Dining Hall:", hall.Label())
		for _, period := range models.MealPeriods() {
			periodItems := FilterMenu(hallItems, MenuQuery{Period: period})
			if len(periodItems) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n**%s:**\n", period.Label())
			for _, it := range periodItems {
				n := it.Nutrition
				fmt.Fprintf(&b, "- %s: %d cal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
					it.Name, n.Calories, n.Protein, n.Carbs, n.Fat)
			}
		}
	}
	return b.String()
}
