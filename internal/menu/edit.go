package menu

import (
	"errors"
	"fmt"
)

// Edit-time operations on an already-reconciled document. None of them
// re-run the merge, so duplicate category names are permitted once editing
// starts.

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("item not found")
)

// Placeholder values for user-added records, matching the interface
// language of the product.
const (
	placeholderCategoryName = "Nhóm món mới"
	placeholderItemName     = "Món mới"
	placeholderSampleName   = "Món mẫu"
	placeholderPrice        = "0đ"
)

// ItemField names the one scalar an UpdateItemField call may touch.
type ItemField string

const (
	FieldName        ItemField = "name"
	FieldPrice       ItemField = "price"
	FieldDescription ItemField = "description"
)

// ParseItemField validates a wire-level field name.
func ParseItemField(s string) (ItemField, error) {
	switch ItemField(s) {
	case FieldName, FieldPrice, FieldDescription:
		return ItemField(s), nil
	}
	return "", fmt.Errorf("unknown item field %q", s)
}

// MoveDirection is the direction of a MoveItem swap.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

func ParseMoveDirection(s string) (MoveDirection, error) {
	switch MoveDirection(s) {
	case MoveUp, MoveDown:
		return MoveDirection(s), nil
	}
	return "", fmt.Errorf("unknown move direction %q", s)
}

// RenameRestaurant replaces the restaurant display name.
func RenameRestaurant(doc *MenuData, name string) {
	doc.RestaurantName = name
}

// RenameCategory replaces a category's display name. The id is kept and no
// re-merge with other same-named categories happens.
func RenameCategory(doc *MenuData, categoryID, newName string) error {
	cat := doc.FindCategory(categoryID)
	if cat == nil {
		return ErrCategoryNotFound
	}
	cat.CategoryName = newName
	return nil
}

// UpdateItemField replaces exactly one scalar field of one item. Price
// format is not validated at this layer.
func UpdateItemField(doc *MenuData, categoryID, itemID string, field ItemField, value string) error {
	cat := doc.FindCategory(categoryID)
	if cat == nil {
		return ErrCategoryNotFound
	}
	item := cat.FindItem(itemID)
	if item == nil {
		return ErrItemNotFound
	}

	switch field {
	case FieldName:
		item.Name = value
	case FieldPrice:
		item.Price = value
	case FieldDescription:
		item.Description = value
	}
	return nil
}

// AddItem appends a placeholder item to a category. The id comes from the
// generator, not from position.
func AddItem(doc *MenuData, gen IDGenerator, categoryID string) (*MenuItem, error) {
	cat := doc.FindCategory(categoryID)
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	cat.Items = append(cat.Items, MenuItem{
		ID:    gen.NextItemID(),
		Name:  placeholderItemName,
		Price: placeholderPrice,
	})
	return &cat.Items[len(cat.Items)-1], nil
}

// DeleteItem removes one item. A category left without items is removed
// from the document as well; surviving siblings keep their ids.
func DeleteItem(doc *MenuData, categoryID, itemID string) error {
	cat := doc.FindCategory(categoryID)
	if cat == nil {
		return ErrCategoryNotFound
	}

	kept := cat.Items[:0]
	found := false
	for _, item := range cat.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrItemNotFound
	}
	cat.Items = kept

	if len(cat.Items) == 0 {
		removeCategory(doc, categoryID)
	}
	return nil
}

// AddCategory appends a placeholder category holding one placeholder item.
func AddCategory(doc *MenuData, gen IDGenerator) *MenuCategory {
	doc.Categories = append(doc.Categories, MenuCategory{
		ID:           gen.NextCategoryID(),
		CategoryName: placeholderCategoryName,
		Items: []MenuItem{{
			ID:    gen.NextItemID(),
			Name:  placeholderSampleName,
			Price: placeholderPrice,
		}},
	})
	return &doc.Categories[len(doc.Categories)-1]
}

// DeleteCategory removes a category and all its items. Callers are expected
// to obtain user confirmation before invoking it; the HTTP layer enforces
// that with an explicit confirm flag.
func DeleteCategory(doc *MenuData, categoryID string) error {
	if doc.FindCategory(categoryID) == nil {
		return ErrCategoryNotFound
	}
	removeCategory(doc, categoryID)
	return nil
}

// MoveItem swaps an item with its immediate neighbor. No-op at the
// boundaries: the first item cannot move up, the last cannot move down.
func MoveItem(doc *MenuData, categoryID, itemID string, direction MoveDirection) error {
	cat := doc.FindCategory(categoryID)
	if cat == nil {
		return ErrCategoryNotFound
	}

	idx := -1
	for i := range cat.Items {
		if cat.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrItemNotFound
	}

	target := idx - 1
	if direction == MoveDown {
		target = idx + 1
	}
	if target < 0 || target >= len(cat.Items) {
		return nil
	}

	cat.Items[idx], cat.Items[target] = cat.Items[target], cat.Items[idx]
	return nil
}

func removeCategory(doc *MenuData, categoryID string) {
	kept := doc.Categories[:0]
	for _, cat := range doc.Categories {
		if cat.ID == categoryID {
			continue
		}
		kept = append(kept, cat)
	}
	doc.Categories = kept
}
