package controllers

import (
	"net/http"
	"strconv"

	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
	"github.com/NikhilaRaj7337/uga-nutrition-app/services"
)

type EnumOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetMenu lists today's menu, filtered by any combination of hall,
// period, q (name substring), tags (repeatable), max_calories, and
// min_protein. Filters combine with AND; absent ones are no-ops.
func GetMenu(w http.ResponseWriter, r *http.Request) {
	q := services.MenuQuery{
		Search: r.URL.Query().Get("q"),
		Tags:   r.URL.Query()["tags"],
	}

	if hallStr := r.URL.Query().Get("hall"); hallStr != "" {
		hall, ok := models.ParseDiningHall(hallStr)
		if !ok {
			writeError(w, http.StatusBadRequest, "Unknown dining hall: "+hallStr)
			return
		}
		q.Hall = hall
	}
	if periodStr := r.URL.Query().Get("period"); periodStr != "" {
		period, ok := models.ParseMealPeriod(periodStr)
		if !ok {
			writeError(w, http.StatusBadRequest, "Unknown meal period: "+periodStr)
			return
		}
		q.Period = period
	}
	if maxCalStr := r.URL.Query().Get("max_calories"); maxCalStr != "" {
		maxCal, err := strconv.Atoi(maxCalStr)
		if err != nil || maxCal < 0 {
			writeError(w, http.StatusBadRequest, "Invalid max_calories")
			return
		}
		q.MaxCalories = maxCal
	}
	if minProtStr := r.URL.Query().Get("min_protein"); minProtStr != "" {
		minProt, err := strconv.ParseFloat(minProtStr, 64)
		if err != nil || minProt < 0 {
			writeError(w, http.StatusBadRequest, "Invalid min_protein")
			return
		}
		q.MinProtein = minProt
	}

	items := catalog.Filter(q)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// GetHalls and GetPeriods feed the frontend pickers: stable value for
// the API, display label for the screen.
func GetHalls(w http.ResponseWriter, r *http.Request) {
	halls := models.DiningHalls()
	options := make([]EnumOption, len(halls))
	for i, h := range halls {
		options[i] = EnumOption{Value: string(h), Label: h.Label()}
	}
	writeJSON(w, http.StatusOK, options)
}

func GetPeriods(w http.ResponseWriter, r *http.Request) {
	periods := models.MealPeriods()
	options := make([]EnumOption, len(periods))
	for i, p := range periods {
		options[i] = EnumOption{Value: string(p), Label: p.Label()}
	}
	writeJSON(w, http.StatusOK, options)
}

func GetFAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.FAQs())
}
