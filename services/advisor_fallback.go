package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

// fallbackRule pairs a keyword predicate with a template renderer.
// Rules are evaluated in order, first match wins, no combination.
type fallbackRule struct {
	keywords []string
	render   func(a *Advisor, actx AdvisorContext) AdvisorReply
}

var fallbackRules = []fallbackRule{
	{
		keywords: []string{"protein", "muscle", "bulk"},
		render:   (*Advisor).proteinStatusReply,
	},
	{
		keywords: []string{"breakfast", "morning"},
		render:   (*Advisor).breakfastReply,
	},
	{
		keywords: []string{"lunch", "dinner", "meal"},
		render:   (*Advisor).mealSuggestionReply,
	},
	{
		keywords: []string{"calories", "over", "under", "budget"},
		render:   (*Advisor).calorieStatusReply,
	},
}

// fallback answers without the LLM: keyword dispatch over a fixed rule
// list, generic capability template when nothing matches. A pure
// function of (text, context, catalog).
func (a *Advisor) fallback(userMessage string, actx AdvisorContext) AdvisorReply {
	lower := strings.ToLower(userMessage)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.render(a, actx)
			}
		}
	}
	return a.genericReply(actx)
}

func (a *Advisor) goalLabel(actx AdvisorContext) string {
	if actx.Goal == nil {
		return "your goals"
	}
	return actx.Goal.Type.Label()
}

// Defaults used when no targets exist yet, matching the placeholder
// numbers the chat view has always shown pre-onboarding.
const (
	fallbackProteinTarget = 150
	fallbackCalorieTarget = 2000
)

func (a *Advisor) proteinStatusReply(actx AdvisorContext) AdvisorReply {
	proteinTarget := fallbackProteinTarget
	if actx.Targets != nil {
		proteinTarget = actx.Targets.Protein
	}
	consumed := actx.TodayTotals.Protein
	remaining := float64(proteinTarget) - consumed
	if remaining < 0 {
		remaining = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your **%s** goal, you should aim for **%dg protein** daily.\n\n", a.goalLabel(actx), proteinTarget)
	fmt.Fprintf(&b, "**Today's progress:** %.0fg consumed, **%.0fg remaining**\n\n", consumed, remaining)
	b.WriteString("**High-protein options at UGA Dining:**\n")
	for _, it := range topProteinItems(a.catalog.Items(), 4) {
		fmt.Fprintf(&b, "- %s (%.0fg protein) - %s, %s\n", it.Name, it.Nutrition.Protein, it.Hall.Label(), it.Period.Label())
	}
	b.WriteString("\nWould you like me to suggest a meal plan to hit your target?")

	return AdvisorReply{Message: b.String(), Citation: citationMenu, Success: true}
}

func (a *Advisor) breakfastReply(actx AdvisorContext) AdvisorReply {
	breakfast := a.catalog.Filter(MenuQuery{Period: models.PeriodBreakfast})

	var b strings.Builder
	b.WriteString("**Breakfast Options at UGA Dining:**\n\n")

	b.WriteString("**High Protein:**\n")
	for _, it := range breakfast {
		if it.Nutrition.Protein >= 12 {
			fmt.Fprintf(&b, "- %s (%d cal, %.0fg protein) - %s\n", it.Name, it.Nutrition.Calories, it.Nutrition.Protein, it.Hall.Label())
		}
	}
	b.WriteString("\n**High Energy:**\n")
	for _, it := range breakfast {
		if it.Nutrition.Carbs >= 20 {
			fmt.Fprintf(&b, "- %s (%d cal, %.0fg protein, %.0fg carbs) - %s\n", it.Name, it.Nutrition.Calories, it.Nutrition.Protein, it.Nutrition.Carbs, it.Hall.Label())
		}
	}
	b.WriteString("\nWhat's your priority - protein, energy, or balanced?")

	return AdvisorReply{Message: b.String(), Citation: citationMenu, Success: true}
}

func (a *Advisor) mealSuggestionReply(actx AdvisorContext) AdvisorReply {
	calorieTarget := fallbackCalorieTarget
	proteinTarget := fallbackProteinTarget
	if actx.Targets != nil {
		calorieTarget = actx.Targets.Calories
		proteinTarget = actx.Targets.Protein
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Let me suggest some meals based on your **%s** goal:\n\n", a.goalLabel(actx))

	for _, period := range []models.MealPeriod{models.PeriodLunch, models.PeriodDinner} {
		picks := topProteinItems(a.catalog.Filter(MenuQuery{Period: period}), 2)
		if len(picks) == 0 {
			continue
		}
		fmt.Fprintf(&b, "**For %s:**\n", period.Label())
		for _, it := range picks {
			fmt.Fprintf(&b, "- %s (%d cal, %.0fg protein) - %s\n", it.Name, it.Nutrition.Calories, it.Nutrition.Protein, it.Hall.Label())
		}
		b.WriteString("\n")
	}

	b.WriteString("**Lighter Options:**\n")
	light := a.catalog.Filter(MenuQuery{MaxCalories: 420})
	for i, it := range light {
		if i == 2 {
			break
		}
		fmt.Fprintf(&b, "- %s (%d cal, %.0fg protein) - %s\n", it.Name, it.Nutrition.Calories, it.Nutrition.Protein, it.Hall.Label())
	}

	fmt.Fprintf(&b, "\nYour daily targets: %d cal | %dg protein\n", calorieTarget, proteinTarget)
	b.WriteString("\nWould you like a complete meal plan for today?")

	return AdvisorReply{Message: b.String(), Citation: citationMenu, Success: true}
}

func (a *Advisor) calorieStatusReply(actx AdvisorContext) AdvisorReply {
	calorieTarget := fallbackCalorieTarget
	if actx.Targets != nil {
		calorieTarget = actx.Targets.Calories
	}
	consumed := actx.TodayTotals.Calories
	remaining := float64(calorieTarget) - consumed

	var b strings.Builder
	b.WriteString("**Your Calorie Status:**\n\n")
	fmt.Fprintf(&b, "- Consumed: **%.0f kcal**\n", consumed)
	fmt.Fprintf(&b, "- Target: **%d kcal**\n", calorieTarget)
	fmt.Fprintf(&b, "- Remaining: **%.0f kcal**\n\n", maxFloat(0, remaining))

	switch {
	case remaining < 0:
		b.WriteString("You are over budget. Consider lighter options or extra activity.\n")
	case remaining <= 500:
		b.WriteString("You are on track!\n")
	default:
		b.WriteString("You have room for a full meal!\n")
	}

	b.WriteString("\n**Lower-calorie, high-protein options:**\n")
	light := a.catalog.Filter(MenuQuery{MaxCalories: 320, MinProtein: 8})
	for i, it := range light {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "- %s (%d cal, %.0fg protein) - %s\n", it.Name, it.Nutrition.Calories, it.Nutrition.Protein, it.Hall.Label())
	}

	return AdvisorReply{Message: b.String(), Citation: citationFoodLog, Success: true}
}

func (a *Advisor) genericReply(actx AdvisorContext) AdvisorReply {
	calories, protein := "Not set", "Not set"
	if actx.Targets != nil {
		calories = fmt.Sprintf("%d", actx.Targets.Calories)
		protein = fmt.Sprintf("%d", actx.Targets.Protein)
	}

	msg := fmt.Sprintf(`I'm here to help with your nutrition goals!

**Your Current Setup:**
- Goal: %s
- Calories: %s kcal/day
- Protein: %sg/day

**I can help you with:**
1. **Meal suggestions** from UGA Dining halls
2. **Protein optimization** strategies
3. **Progress analysis** based on your log
4. **Dining hall recommendations** for specific goals

Try asking:
- "What should I eat for lunch at Bolton?"
- "How can I hit my protein goal?"
- "What are some healthy breakfast options?"`,
		a.goalLabel(actx), calories, protein)

	return AdvisorReply{Message: msg, Citation: citationMenu, Success: true}
}

// topProteinItems returns the n highest-protein dishes among items,
// ties broken by menu order.
func topProteinItems(items []models.MenuItem, n int) []models.MenuItem {
	items = append([]models.MenuItem(nil), items...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Nutrition.Protein > items[j].Nutrition.Protein
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
