package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/NikhilaRaj7337/uga-nutrition-app/data"
	"github.com/NikhilaRaj7337/uga-nutrition-app/models"
)

// MenuSource supplies the catalog's items. Menus change daily, so the
// catalog is reloadable rather than a compile-time constant.
type MenuSource interface {
	Load() ([]models.MenuItem, error)
}

// Catalog holds the current menu behind a read lock so a reload can
// swap it atomically under concurrent readers.
type Catalog struct {
	mu     sync.RWMutex
	items  []models.MenuItem
	faqs   []models.FAQ
	source MenuSource
}

// NewCatalog loads the initial menu from source and the built-in FAQ
// seed.
func NewCatalog(source MenuSource) (*Catalog, error) {
	faqs, err := parseFAQs(data.FAQsJSON)
	if err != nil {
		return nil, fmt.Errorf("parse faq seed: %w", err)
	}
	c := &Catalog{source: source, faqs: faqs}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload replaces the item list from the source. On failure the
// previous menu stays in place.
func (c *Catalog) Reload() error {
	items, err := c.source.Load()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// Items returns a snapshot of the current menu.
func (c *Catalog) Items() []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// FAQs returns the static guidance entries.
func (c *Catalog) FAQs() []models.FAQ {
	return c.faqs
}

// Get looks up an item by ID.
func (c *Catalog) Get(id string) (models.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

// Filter applies q to the current menu.
func (c *Catalog) Filter(q MenuQuery) []models.MenuItem {
	return FilterMenu(c.Items(), q)
}

// MenuQuery bundles the optional filter predicates. Zero values are
// no-ops.
type MenuQuery struct {
	Hall        models.DiningHall
	Period      models.MealPeriod
	Search      string
	Tags        []string
	MaxCalories int
	MinProtein  float64
}

// FilterMenu returns the items matching every provided predicate,
// preserving input order. Search matches case-insensitively as a name
// substring; tags match when the intersection is non-empty.
func FilterMenu(items []models.MenuItem, q MenuQuery) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	search := strings.ToLower(q.Search)
	for i := range items {
		it := &items[i]
		if q.Hall != "" && it.Hall != q.Hall {
			continue
		}
		if q.Period != "" && it.Period != q.Period {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		if len(q.Tags) > 0 && !it.HasAnyTag(q.Tags) {
			continue
		}
		if q.MaxCalories > 0 && it.Nutrition.Calories > q.MaxCalories {
			continue
		}
		if q.MinProtein > 0 && it.Nutrition.Protein < q.MinProtein {
			continue
		}
		out = append(out, *it)
	}
	return out
}

// menuItemJSON is the wire shape of a menu feed entry. Hall and period
// may arrive as either stable tags or display labels.
type menuItemJSON struct {
	ID        string                  `json:"item_id"`
	Name      string                  `json:"name"`
	Hall      string                  `json:"dining_hall"`
	Period    string                  `json:"meal_period"`
	Date      string                  `json:"date"`
	Nutrition models.NutritionProfile `json:"nutrition"`
	Tags      []string                `json:"tags"`
	Allergens []string                `json:"allergens"`
}

func parseMenu(raw []byte) ([]models.MenuItem, error) {
	var entries []menuItemJSON
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	items := make([]models.MenuItem, 0, len(entries))
	for _, e := range entries {
		hall, ok := models.ParseDiningHall(e.Hall)
		if !ok {
			return nil, fmt.Errorf("menu item %q: unknown dining hall %q", e.ID, e.Hall)
		}
		period, ok := models.ParseMealPeriod(e.Period)
		if !ok {
			return nil, fmt.Errorf("menu item %q: unknown meal period %q", e.ID, e.Period)
		}
		date := e.Date
		if date == "" {
			date = today
		}
		items = append(items, models.MenuItem{
			ID:        e.ID,
			Name:      e.Name,
			Hall:      hall,
			Period:    period,
			Date:      date,
			Nutrition: e.Nutrition,
			Tags:      e.Tags,
			Allergens: e.Allergens,
		})
	}
	return items, nil
}

func parseFAQs(raw []byte) ([]models.FAQ, error) {
	var faqs []models.FAQ
	if err := json.Unmarshal(raw, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// FileSource reads the menu from a JSON file on every load, picking up
// feed updates without a restart.
type FileSource struct {
	Path string
}

func (s FileSource) Load() ([]models.MenuItem, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return parseMenu(raw)
}

// SeedSource serves the embedded sample menu.
type SeedSource struct{}

func (SeedSource) Load() ([]models.MenuItem, error) {
	return parseMenu(data.MenuJSON)
}

// NewMenuSource picks a file source when path is set, the embedded
// seed otherwise.
func NewMenuSource(path string) MenuSource {
	if path != "" {
		return FileSource{Path: path}
	}
	return SeedSource{}
}
