package domain

// MenuItem represents a single dish or drink in the catalog.
// Names are unique within the catalog, matched case-insensitively.
type MenuItem struct {
	Name        string
	Price       float64
	Description string
}

// MenuCategory is an ordered group of menu items.
// Category and item declaration order is significant: it is the
// resolver's disambiguation priority for free-text matching.
type MenuCategory struct {
	Name  string
	Items []MenuItem
}

// MenuCatalog is the full price list, read-only after startup.
// The "specials" category is declared first and surfaced first.
type MenuCatalog struct {
	Categories []MenuCategory
}

// CatalogEntry is a flattened menu item with its category attached
type CatalogEntry struct {
	Name     string
	Price    float64
	Category string
}

// Flatten returns every item in catalog declaration order
func (c *MenuCatalog) Flatten() []CatalogEntry {
	var flat []CatalogEntry
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			flat = append(flat, CatalogEntry{
				Name:     item.Name,
				Price:    item.Price,
				Category: cat.Name,
			})
		}
	}
	return flat
}
