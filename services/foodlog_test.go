package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

var (
	chickenItem = models.MenuItem{
		ID: "b-1", Name: "Grilled Chicken Breast", Hall: models.HallBolton, Period: models.PeriodLunch,
		Nutrition: models.NutritionProfile{Calories: 231, Protein: 43.5, Carbs: 0, Fat: 5, Fiber: 0, Sodium: 104},
	}
	oatmealItem = models.MenuItem{
		ID: "b-2", Name: "Oatmeal", Hall: models.HallBolton, Period: models.PeriodBreakfast,
		Nutrition: models.NutritionProfile{Calories: 158, Protein: 6, Carbs: 27, Fat: 3.2, Fiber: 4, Sodium: 115},
	}
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotalsEmptyLogIsZero(t *testing.T) {
	log := NewFoodLog()
	totals := log.TotalsFor("2026-08-29")
	if totals != (DayTotals{}) {
		t.Errorf("empty log totals = %+v, want zeros", totals)
	}
}

func TestTotalsSumServingsWeighted(t *testing.T) {
	log := NewFoodLog()
	now := time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)

	if _, err := log.Add(&chickenItem, 2, now); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := log.Add(&oatmealItem, 1.5, now); err != nil {
		t.Fatalf("Add: %v", err)
	}

	totals := log.TotalsFor("2026-08-29")
	if want := 231*2.0 + 158*1.5; !approxEqual(totals.Calories, want) {
		t.Errorf("Calories = %v, want %v", totals.Calories, want)
	}
	if want := 43.5*2.0 + 6*1.5; !approxEqual(totals.Protein, want) {
		t.Errorf("Protein = %v, want %v", totals.Protein, want)
	}
	if want := 5*2.0 + 3.2*1.5; !approxEqual(totals.Fat, want) {
		t.Errorf("Fat = %v, want %v", totals.Fat, want)
	}
}

func TestAddRejectsTinyServings(t *testing.T) {
	log := NewFoodLog()
	_, err := log.Add(&chickenItem, 0.25, time.Now())
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if len(log.Entries()) != 0 {
		t.Error("rejected add still appended an entry")
	}
}

func TestSetServingsMovesTotalsByDelta(t *testing.T) {
	log := NewFoodLog()
	now := time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)
	entry, err := log.Add(&chickenItem, 1, now)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := log.SetServings(entry.ID, 3); err != nil {
		t.Fatalf("SetServings: %v", err)
	}
	totals := log.TotalsFor("2026-08-29")
	if want := 231 * 3.0; !approxEqual(totals.Calories, want) {
		t.Errorf("Calories = %v, want %v", totals.Calories, want)
	}
}

func TestSetServingsRejectsBelowMinimumWithoutMutating(t *testing.T) {
	log := NewFoodLog()
	entry, err := log.Add(&chickenItem, 2, time.Now())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := log.SetServings(entry.ID, 0.4); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if entry.Servings != 2 {
		t.Errorf("Servings = %v after rejected update, want 2", entry.Servings)
	}
}

func TestSetServingsUnknownID(t *testing.T) {
	log := NewFoodLog()
	if err := log.SetServings("missing", 1); err == nil {
		t.Error("SetServings on unknown ID succeeded")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	log := NewFoodLog()
	entry, err := log.Add(&chickenItem, 1, time.Now())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	log.Remove(entry.ID)
	if len(log.Entries()) != 0 {
		t.Fatal("entry still present after Remove")
	}
	// Second remove of the same ID must be a quiet no-op.
	log.Remove(entry.ID)
	log.Remove("never-existed")
	if len(log.Entries()) != 0 {
		t.Error("log changed after removing absent IDs")
	}
}

func TestEntrySnapshotSurvivesMenuChange(t *testing.T) {
	log := NewFoodLog()
	item := chickenItem
	entry, err := log.Add(&item, 1, time.Now())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	item.Nutrition.Calories = 999
	if entry.Nutrition.Calories != 231 {
		t.Errorf("entry calories = %d after menu change, want 231", entry.Nutrition.Calories)
	}
}

func TestWeeklySeriesGroupsAndOmitsEmptyDates(t *testing.T) {
	log := NewFoodLog()
	day := func(d int, hour int) time.Time {
		return time.Date(2026, 8, d, hour, 0, 0, 0, time.UTC)
	}

	// Two entries on the 27th, one on the 25th, nothing between.
	if _, err := log.Add(&chickenItem, 1, day(27, 12)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := log.Add(&oatmealItem, 1, day(27, 8)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := log.Add(&oatmealItem, 2, day(25, 9)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Outside the window.
	if _, err := log.Add(&chickenItem, 1, day(10, 12)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	rows := log.WeeklySeries(day(29, 18), 7)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (empty dates omitted)", len(rows))
	}
	if rows[0].Date != "2026-08-25" || rows[1].Date != "2026-08-27" {
		t.Errorf("dates = %s, %s; want ascending 2026-08-25, 2026-08-27", rows[0].Date, rows[1].Date)
	}
	if want := 158 * 2.0; !approxEqual(rows[0].Calories, want) {
		t.Errorf("25th calories = %v, want %v", rows[0].Calories, want)
	}
	if want := 231 + 158.0; !approxEqual(rows[1].Calories, want) {
		t.Errorf("27th calories = %v, want %v", rows[1].Calories, want)
	}
}

func TestAdjustedNutritionRounding(t *testing.T) {
	item := models.MenuItem{
		ID: "x", Name: "Test Dish", Hall: models.HallBolton, Period: models.PeriodLunch,
		Nutrition: models.NutritionProfile{Calories: 231, Protein: 43.5, Fat: 5},
	}
	entry, err := models.NewLogEntry(&item, 1.5, time.Now())
	if err != nil {
		t.Fatalf("NewLogEntry: %v", err)
	}

	adj := entry.AdjustedNutrition()
	if adj.Calories != 346 { // int(231 * 1.5) = int(346.5)
		t.Errorf("Calories = %d, want 346", adj.Calories)
	}
	if !approxEqual(adj.Protein, 65.3) { // round1(65.25)
		t.Errorf("Protein = %v, want 65.3", adj.Protein)
	}
	if !approxEqual(adj.Fat, 7.5) {
		t.Errorf("Fat = %v, want 7.5", adj.Fat)
	}
}
