package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

// FoodLog is the mutable list of consumed-item records for one
// session. Callers serialize access through the owning session's lock.
type FoodLog struct {
	entries []*models.LogEntry
}

func NewFoodLog() *FoodLog {
	return &FoodLog{}
}

// Add snapshots the item's current nutrition into a new entry stamped
// with now and appends it. Duplicates are valid: logging the same item
// twice means it was eaten twice.
func (l *FoodLog) Add(item *models.MenuItem, servings float64, now time.Time) (*models.LogEntry, error) {
	entry, err := models.NewLogEntry(item, servings, now)
	if err != nil {
		return nil, err
	}
	l.entries = append(l.entries, entry)
	return entry, nil
}

// Entries returns all entries in insertion order.
func (l *FoodLog) Entries() []*models.LogEntry {
	out := make([]*models.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// EntriesFor returns the entries whose date key matches date
// (YYYY-MM-DD), in insertion order.
func (l *FoodLog) EntriesFor(date string) []*models.LogEntry {
	var out []*models.LogEntry
	for _, e := range l.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// SetServings updates an entry's servings in place. Values below the
// minimum are rejected without mutating anything.
func (l *FoodLog) SetServings(entryID string, servings float64) error {
	if servings < models.MinServings {
		return fmt.Errorf("%w: servings %.2f below minimum %.1f", models.ErrValidation, servings, models.MinServings)
	}
	for _, e := range l.entries {
		if e.ID == entryID {
			e.Servings = servings
			return nil
		}
	}
	return fmt.Errorf("log entry %q not found", entryID)
}

// Remove deletes the entry with the given ID. Removing an absent entry
// is a no-op, so a double-tapped delete button can't crash anything.
func (l *FoodLog) Remove(entryID string) {
	for i, e := range l.entries {
		if e.ID == entryID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Replace swaps the whole entry list, used when restoring a backup.
func (l *FoodLog) Replace(entries []*models.LogEntry) {
	l.entries = entries
}

// DayTotals is the servings-weighted nutrition sum for one date.
type DayTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

func (t *DayTotals) add(e *models.LogEntry) {
	t.Calories += float64(e.Nutrition.Calories) * e.Servings
	t.Protein += e.Nutrition.Protein * e.Servings
	t.Carbs += e.Nutrition.Carbs * e.Servings
	t.Fat += e.Nutrition.Fat * e.Servings
	t.Fiber += e.Nutrition.Fiber * e.Servings
	t.Sodium += e.Nutrition.Sodium * e.Servings
}

// TotalsFor sums (base value × servings) over the entries of one date.
// A date with no entries yields all zeros.
func (l *FoodLog) TotalsFor(date string) DayTotals {
	var totals DayTotals
	for _, e := range l.entries {
		if e.Date == date {
			totals.add(e)
		}
	}
	return totals
}

// DailyRow is one aggregate row of the weekly series.
type DailyRow struct {
	Date string `json:"date"`
	DayTotals
}

// WeeklySeries groups entries by date key within
// [today - lookbackDays, today] inclusive, one row per date that has
// entries, ascending by date. Dates without entries are omitted rather
// than zero-filled: "days logged" counts rows.
func (l *FoodLog) WeeklySeries(today time.Time, lookbackDays int) []DailyRow {
	start := today.AddDate(0, 0, -lookbackDays).Format("2006-01-02")
	end := today.Format("2006-01-02")

	byDate := make(map[string]*DayTotals)
	for _, e := range l.entries {
		if e.Date < start || e.Date > end {
			continue
		}
		t, ok := byDate[e.Date]
		if !ok {
			t = &DayTotals{}
			byDate[e.Date] = t
		}
		t.add(e)
	}

	rows := make([]DailyRow, 0, len(byDate))
	for date, t := range byDate {
		rows = append(rows, DailyRow{Date: date, DayTotals: *t})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}
