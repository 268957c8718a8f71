package services

import (
	"fmt"

	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

// Mifflin-St Jeor with age hardcoded to 20: the app serves a
// college population and the onboarding form never asks for age.
const assumedAge = 20

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// defaultActivityMultiplier covers unknown activity levels.
const defaultActivityMultiplier = 1.55

type goalAdjustment struct {
	calorieDelta float64
	proteinMult  float64 // grams per pound of body weight
}

var goalAdjustments = map[models.GoalType]goalAdjustment{
	models.GoalBulk:        {calorieDelta: 300, proteinMult: 1.0},
	models.GoalCut:         {calorieDelta: -500, proteinMult: 1.0},
	models.GoalMaintain:    {calorieDelta: 0, proteinMult: 0.8},
	models.GoalEnergy:      {calorieDelta: 0, proteinMult: 0.8},
	models.GoalHealth:      {calorieDelta: 0, proteinMult: 0.8},
	models.GoalPerformance: {calorieDelta: 200, proteinMult: 1.0},
}

const (
	targetFiber  = 30   // grams
	targetSodium = 2300 // mg
)

// ComputeTargets derives daily macro targets from body metrics, an
// activity level, and a goal. Pure and deterministic: the same inputs
// always yield the same targets. Inputs outside the onboarding form's
// ranges are rejected rather than clamped.
func ComputeTargets(weightLbs float64, heightFt, heightIn int, activity models.ActivityLevel, goal models.GoalType) (models.DailyTargets, error) {
	if weightLbs < 80 || weightLbs > 400 {
		return models.DailyTargets{}, fmt.Errorf("%w: weight %.1f lbs outside 80-400", models.ErrValidation, weightLbs)
	}
	if heightFt < 4 || heightFt > 7 {
		return models.DailyTargets{}, fmt.Errorf("%w: height %d ft outside 4-7", models.ErrValidation, heightFt)
	}
	if heightIn < 0 || heightIn > 11 {
		return models.DailyTargets{}, fmt.Errorf("%w: height %d in outside 0-11", models.ErrValidation, heightIn)
	}

	weightKg := weightLbs * 0.453592
	heightCm := float64(heightFt*12+heightIn) * 2.54

	bmr := 10*weightKg + 6.25*heightCm - 5*assumedAge + 5

	mult, ok := activityMultipliers[activity]
	if !ok {
		mult = defaultActivityMultiplier
	}
	tdee := bmr * mult

	adj, ok := goalAdjustments[goal]
	if !ok {
		adj = goalAdjustment{calorieDelta: 0, proteinMult: 0.8}
	}

	calories := int(tdee + adj.calorieDelta)
	return models.DailyTargets{
		Calories: calories,
		Protein:  int(weightLbs * adj.proteinMult),
		Carbs:    int(float64(calories) * 0.45 / 4), // 45% of calories, 4 kcal/g
		Fat:      int(float64(calories) * 0.25 / 9), // 25% of calories, 9 kcal/g
		Fiber:    targetFiber,
		Sodium:   targetSodium,
	}, nil
}
