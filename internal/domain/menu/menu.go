// Package menu holds the selectable catalog: flavors, dips, sides, and
// desserts.
//
// Entries are validated once when the catalog file is loaded; everything
// downstream treats them opaquely by id and can trust the shape.
package menu

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxHeatLevel is the top of the heat scale used on flavor entries.
const MaxHeatLevel = 5

// Entry is one selectable catalog item. HeatLevel is only present on
// flavors; Price is an optional upcharge on top of the box base price.
type Entry struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	HeatLevel *int             `json:"heat_level,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

// Upcharge returns the entry's price, or zero when it has none.
func (e Entry) Upcharge() decimal.Decimal {
	if e.Price == nil {
		return decimal.Zero
	}
	return *e.Price
}

// Catalog is the full set of selectable items for the configurator.
type Catalog struct {
	Flavors  []Entry
	Dips     []Entry
	Sides    []Entry
	Desserts []Entry

	byID map[string]Entry
}

// rawEntry is the on-disk shape; prices are strings so the yaml decoder
// never goes through float64.
type rawEntry struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	HeatLevel *int   `yaml:"heat_level"`
	Price     string `yaml:"price"`
}

type rawCatalog struct {
	Flavors  []rawEntry `yaml:"flavors"`
	Dips     []rawEntry `yaml:"dips"`
	Sides    []rawEntry `yaml:"sides"`
	Desserts []rawEntry `yaml:"desserts"`
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates catalog yaml. Every entry needs a non-empty id and name,
// ids must be unique across the whole catalog, heat levels must be on the
// scale, and prices must parse as non-negative decimals.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{byID: map[string]Entry{}}

	sections := []struct {
		name    string
		entries []rawEntry
		dst     *[]Entry
	}{
		{"flavors", raw.Flavors, &c.Flavors},
		{"dips", raw.Dips, &c.Dips},
		{"sides", raw.Sides, &c.Sides},
		{"desserts", raw.Desserts, &c.Desserts},
	}

	for _, section := range sections {
		for _, r := range section.entries {
			entry, err := validateEntry(r)
			if err != nil {
				return nil, fmt.Errorf("%s entry %q: %w", section.name, r.ID, err)
			}
			if _, dup := c.byID[entry.ID]; dup {
				return nil, fmt.Errorf("%s entry %q: duplicate id", section.name, r.ID)
			}
			c.byID[entry.ID] = entry
			*section.dst = append(*section.dst, entry)
		}
	}

	if len(c.Flavors) == 0 {
		return nil, fmt.Errorf("catalog has no flavors")
	}

	return c, nil
}

func validateEntry(r rawEntry) (Entry, error) {
	if r.ID == "" {
		return Entry{}, fmt.Errorf("missing id")
	}
	if r.Name == "" {
		return Entry{}, fmt.Errorf("missing name")
	}

	e := Entry{ID: r.ID, Name: r.Name, HeatLevel: r.HeatLevel}

	if r.HeatLevel != nil {
		if *r.HeatLevel < 0 || *r.HeatLevel > MaxHeatLevel {
			return Entry{}, fmt.Errorf("heat level %d out of range [0, %d]", *r.HeatLevel, MaxHeatLevel)
		}
	}

	if r.Price != "" {
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			return Entry{}, fmt.Errorf("bad price %q: %w", r.Price, err)
		}
		if price.IsNegative() {
			return Entry{}, fmt.Errorf("negative price %s", price)
		}
		e.Price = &price
	}

	return e, nil
}

// Lookup finds any catalog entry by id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// HasFlavor reports whether id names a flavor entry.
func (c *Catalog) HasFlavor(id string) bool {
	return contains(c.Flavors, id)
}

// HasDip reports whether id names a dip entry.
func (c *Catalog) HasDip(id string) bool {
	return contains(c.Dips, id)
}

// HasSide reports whether id names a side entry.
func (c *Catalog) HasSide(id string) bool {
	return contains(c.Sides, id)
}

// HasDessert reports whether id names a dessert entry.
func (c *Catalog) HasDessert(id string) bool {
	return contains(c.Desserts, id)
}

func contains(entries []Entry, id string) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}
