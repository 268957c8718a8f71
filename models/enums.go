package models

// Enum values keep a stable internal tag separate from the display
// label, so persisted exports survive display-copy changes. Parse
// helpers accept either form since frontends and old backups may carry
// the label.

type MealPeriod string

const (
	PeriodBreakfast MealPeriod = "breakfast"
	PeriodLunch     MealPeriod = "lunch"
	PeriodDinner    MealPeriod = "dinner"
	PeriodLateNight MealPeriod = "late_night"
)

var mealPeriodLabels = map[MealPeriod]string{
	PeriodBreakfast: "Breakfast",
	PeriodLunch:     "Lunch",
	PeriodDinner:    "Dinner",
	PeriodLateNight: "Late Night",
}

func (p MealPeriod) Label() string { return mealPeriodLabels[p] }

// MealPeriods lists all periods in serving order.
func MealPeriods() []MealPeriod {
	return []MealPeriod{PeriodBreakfast, PeriodLunch, PeriodDinner, PeriodLateNight}
}

// ParseMealPeriod resolves a tag or display label. ok is false for
// unknown values.
func ParseMealPeriod(s string) (MealPeriod, bool) {
	for p, label := range mealPeriodLabels {
		if s == string(p) || s == label {
			return p, true
		}
	}
	return "", false
}

type DiningHall string

const (
	HallBolton        DiningHall = "bolton"
	HallSnelling      DiningHall = "snelling"
	HallVillageSummit DiningHall = "village_summit"
	HallNiche         DiningHall = "niche"
	HallOHouse        DiningHall = "ohouse"
)

var diningHallLabels = map[DiningHall]string{
	HallBolton:        "Bolton",
	HallSnelling:      "Snelling",
	HallVillageSummit: "Village Summit",
	HallNiche:         "Niche",
	HallOHouse:        "O-House",
}

func (h DiningHall) Label() string { return diningHallLabels[h] }

func DiningHalls() []DiningHall {
	return []DiningHall{HallBolton, HallSnelling, HallVillageSummit, HallNiche, HallOHouse}
}

func ParseDiningHall(s string) (DiningHall, bool) {
	for h, label := range diningHallLabels {
		if s == string(h) || s == label {
			return h, true
		}
	}
	return "", false
}

type GoalType string

const (
	GoalBulk        GoalType = "bulk"
	GoalCut         GoalType = "cut"
	GoalMaintain    GoalType = "maintain"
	GoalEnergy      GoalType = "energy"
	GoalHealth      GoalType = "health"
	GoalPerformance GoalType = "performance"
)

var goalTypeLabels = map[GoalType]string{
	GoalBulk:        "Build Muscle / Bulk Up",
	GoalCut:         "Lose Fat / Cut",
	GoalMaintain:    "Maintain Weight",
	GoalEnergy:      "Improve Energy",
	GoalHealth:      "General Health",
	GoalPerformance: "Athletic Performance",
}

func (g GoalType) Label() string { return goalTypeLabels[g] }

func GoalTypes() []GoalType {
	return []GoalType{GoalBulk, GoalCut, GoalMaintain, GoalEnergy, GoalHealth, GoalPerformance}
}

func ParseGoalType(s string) (GoalType, bool) {
	for g, label := range goalTypeLabels {
		if s == string(g) || s == label {
			return g, true
		}
	}
	return "", false
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityLevelLabels = map[ActivityLevel]string{
	ActivitySedentary:  "Sedentary (little exercise)",
	ActivityLight:      "Light (1-3 days/week)",
	ActivityModerate:   "Moderate (3-5 days/week)",
	ActivityActive:     "Active (6-7 days/week)",
	ActivityVeryActive: "Very Active (athlete/physical job)",
}

func (a ActivityLevel) Label() string { return activityLevelLabels[a] }

func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive}
}

func ParseActivityLevel(s string) (ActivityLevel, bool) {
	for a, label := range activityLevelLabels {
		if s == string(a) || s == label {
			return a, true
		}
	}
	return "", false
}
