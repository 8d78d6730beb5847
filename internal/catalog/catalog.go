package catalog

// Topping is an add-on owned by a single menu entry. Line items reference
// toppings by id, never by copy-and-edit.
type Topping struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// MenuEntry is one bowl on the menu. Prices are integer rupiah. Entries are
// immutable after the catalog is built.
type MenuEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	SpiceLevels []string  `json:"spiceLevels"`
	Toppings    []Topping `json:"toppings"`
}

// HasSpiceLevel reports whether level is one of the entry's configured levels.
func (m MenuEntry) HasSpiceLevel(level string) bool {
	for _, l := range m.SpiceLevels {
		if l == level {
			return true
		}
	}
	return false
}

// ToppingByID looks a topping up within this entry's own topping set.
func (m MenuEntry) ToppingByID(id string) (Topping, bool) {
	for _, t := range m.Toppings {
		if t.ID == id {
			return t, true
		}
	}
	return Topping{}, false
}

// Catalog is the read-only menu, loaded once at process start.
type Catalog struct {
	entries []MenuEntry
	byID    map[string]MenuEntry
}

func New() *Catalog {
	entries := seedMenu()

	byID := make(map[string]MenuEntry, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}

	return &Catalog{entries: entries, byID: byID}
}

// Entries returns the menu in its seeded order.
func (c *Catalog) Entries() []MenuEntry {
	out := make([]MenuEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) ByID(id string) (MenuEntry, bool) {
	entry, ok := c.byID[id]
	return entry, ok
}

// Categories returns the distinct category labels in menu order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool, len(c.entries))
	var out []string
	for _, entry := range c.entries {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			out = append(out, entry.Category)
		}
	}
	return out
}
