package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

// LogCSVHeader is the fixed column order of a food-log CSV export.
const LogCSVHeader = "date,time,name,hall,meal,calories,protein,carbs,fat,servings"

// ExportLogCSV renders one row per entry for the selected day. Values
// are written as-is: an item name containing a comma will break the
// row, a limitation the consuming spreadsheet tooling tolerates.
func ExportLogCSV(entries []*models.LogEntry) string {
	var b strings.Builder
	b.WriteString(LogCSVHeader + "\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%d,%g,%g,%g,%g\n",
			e.Date, e.Time, e.Name, e.Hall, e.Period,
			e.Nutrition.Calories, e.Nutrition.Protein, e.Nutrition.Carbs, e.Nutrition.Fat,
			e.Servings)
	}
	return b.String()
}

// Backup is the full user-triggered JSON export. Re-importing it
// restores the session exactly.
type Backup struct {
	Profile *models.UserProfile  `json:"profile"`
	Goals   *models.Goal         `json:"goals"`
	Targets *models.DailyTargets `json:"targets"`
	FoodLog []*models.LogEntry   `json:"food_log"`
}

// ExportBackup pretty-prints the backup document.
func ExportBackup(b Backup) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// ParseBackup is the inverse of ExportBackup.
func ParseBackup(raw []byte) (Backup, error) {
	var b Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return Backup{}, err
	}
	return b, nil
}
