package menu

// MenuItem is a single dish or drink. Price stays a display string: the
// extraction service is asked for integer-looking values but nothing
// downstream depends on that. Item ids are unique within the owning
// category only.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

// MenuCategory groups items under a display name. Category ids are unique
// across the whole document; CategoryName is the merge key during
// reconciliation (exact, case-sensitive).
type MenuCategory struct {
	ID           string     `json:"id"`
	CategoryName string     `json:"categoryName"`
	Items        []MenuItem `json:"items"`
}

// MenuData is the reconciled document for one upload/edit/export session.
type MenuData struct {
	RestaurantName string         `json:"restaurantName,omitempty"`
	Categories     []MenuCategory `json:"categories"`
}

// ExtractionResult is the raw per-image output of the extraction service,
// before any ids are assigned. Ids the service happens to emit are
// discarded by reconciliation.
type ExtractionResult struct {
	RestaurantName string              `json:"restaurantName,omitempty"`
	Categories     []ExtractedCategory `json:"categories"`
}

// ExtractedCategory mirrors MenuCategory minus the id.
type ExtractedCategory struct {
	CategoryName string     `json:"categoryName"`
	Items        []MenuItem `json:"items"`
}

// FindCategory returns a pointer into the document's category slice, or nil.
func (d *MenuData) FindCategory(categoryID string) *MenuCategory {
	for i := range d.Categories {
		if d.Categories[i].ID == categoryID {
			return &d.Categories[i]
		}
	}
	return nil
}

// FindItem returns a pointer into the category's item slice, or nil.
func (c *MenuCategory) FindItem(itemID string) *MenuItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}
