package models

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ErrValidation marks user-input range violations. Controllers map it
// to 400; everything else is a 500.
var ErrValidation = errors.New("validation error")

// MinServings is the smallest servings multiplier a log entry accepts.
const MinServings = 0.5

// NutritionProfile holds per-serving base nutrition values.
// Calories in kcal, macros and fiber in grams, sodium in mg.
type NutritionProfile struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// MenuItem is a dish served at a dining location. Items are created at
// catalog-load time and never mutated afterwards.
type MenuItem struct {
	ID        string           `json:"item_id"`
	Name      string           `json:"name"`
	Hall      DiningHall       `json:"dining_hall"`
	Period    MealPeriod       `json:"meal_period"`
	Date      string           `json:"date"` // YYYY-MM-DD
	Nutrition NutritionProfile `json:"nutrition"`
	Tags      []string         `json:"tags"`
	Allergens []string         `json:"allergens"`
}

// HasAnyTag reports whether the item carries at least one of the given
// tags.
func (m *MenuItem) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range m.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

// UserProfile captures onboarding answers. It is replaced wholesale on
// reset, never partially mutated.
type UserProfile struct {
	WeightLbs           float64       `json:"weight_lbs"`
	HeightFt            int           `json:"height_ft"`
	HeightIn            int           `json:"height_in"`
	Activity            ActivityLevel `json:"activity_level"`
	DiningPreference    []DiningHall  `json:"dining_preference"`
	DietaryRestrictions []string      `json:"dietary_restrictions"`
}

// NewUserProfile validates the body metrics against the same ranges
// the onboarding form enforces.
func NewUserProfile(weightLbs float64, heightFt, heightIn int, activity ActivityLevel, halls []DiningHall, restrictions []string) (*UserProfile, error) {
	if weightLbs < 80 || weightLbs > 400 {
		return nil, fmt.Errorf("%w: weight %.1f lbs outside 80-400", ErrValidation, weightLbs)
	}
	if heightFt < 4 || heightFt > 7 {
		return nil, fmt.Errorf("%w: height %d ft outside 4-7", ErrValidation, heightFt)
	}
	if heightIn < 0 || heightIn > 11 {
		return nil, fmt.Errorf("%w: height %d in outside 0-11", ErrValidation, heightIn)
	}
	if _, ok := ParseActivityLevel(string(activity)); !ok {
		return nil, fmt.Errorf("%w: unknown activity level %q", ErrValidation, activity)
	}
	return &UserProfile{
		WeightLbs:           weightLbs,
		HeightFt:            heightFt,
		HeightIn:            heightIn,
		Activity:            activity,
		DiningPreference:    halls,
		DietaryRestrictions: restrictions,
	}, nil
}

// WeightKg converts the stored weight to kilograms.
func (p *UserProfile) WeightKg() float64 {
	return p.WeightLbs * 0.453592
}

// HeightCm converts the stored height to centimeters.
func (p *UserProfile) HeightCm() float64 {
	return float64(p.HeightFt*12+p.HeightIn) * 2.54
}

// Goal pairs a goal type with its creation time. Targets are computed
// once when the goal is created and frozen: a later profile change
// does not recompute them.
type Goal struct {
	Type      GoalType  `json:"goal_type"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyTargets is the frozen snapshot derived from a goal.
type DailyTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Sodium   int `json:"sodium"`
}

// LogEntry records one consumed item. Nutrition is copied from the
// menu item at log time so later catalog changes never rewrite logged
// history. Duplicate entries are valid (eating the same item twice).
type LogEntry struct {
	ID        string           `json:"entry_id"`
	Date      string           `json:"date"` // YYYY-MM-DD, the calendar day key
	Time      string           `json:"time"` // HH:MM
	Name      string           `json:"name"`
	Hall      string           `json:"hall"`
	Period    string           `json:"meal"`
	Nutrition NutritionProfile `json:"nutrition"`
	Servings  float64          `json:"servings"`
}

// NewLogEntry snapshots item's nutrition into a fresh entry stamped
// with now. The entry's date key always matches the calendar date of
// its timestamp.
func NewLogEntry(item *MenuItem, servings float64, now time.Time) (*LogEntry, error) {
	if servings < MinServings {
		return nil, fmt.Errorf("%w: servings %.2f below minimum %.1f", ErrValidation, servings, MinServings)
	}
	return &LogEntry{
		ID:        uuid.NewString(),
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04"),
		Name:      item.Name,
		Hall:      item.Hall.Label(),
		Period:    item.Period.Label(),
		Nutrition: item.Nutrition,
		Servings:  servings,
	}, nil
}

// AdjustedNutrition scales the base values by servings. Calories are
// truncated to whole kcal; the rest round to one decimal.
func (e *LogEntry) AdjustedNutrition() NutritionProfile {
	round1 := func(v float64) float64 { return math.Round(v*10) / 10 }
	return NutritionProfile{
		Calories: int(float64(e.Nutrition.Calories) * e.Servings),
		Protein:  round1(e.Nutrition.Protein * e.Servings),
		Carbs:    round1(e.Nutrition.Carbs * e.Servings),
		Fat:      round1(e.Nutrition.Fat * e.Servings),
		Fiber:    round1(e.Nutrition.Fiber * e.Servings),
		Sodium:   round1(e.Nutrition.Sodium * e.Servings),
	}
}

// ChatMessage is one turn of the advisor conversation. The sequence is
// append-only and cleared wholesale on user request.
type ChatMessage struct {
	Role     string `json:"role"` // "user" | "assistant"
	Content  string `json:"content"`
	Citation string `json:"citation,omitempty"`
}

// FAQ is a static guidance entry served alongside the menu.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Source   string `json:"source"`
	Category string `json:"category"`
}
