package menu

import "fmt"

// Reconcile merges per-image extraction batches into one consistent
// document. It is a pure transform: no I/O, no clock, no randomness.
//
// Rules, in batch arrival order:
//   - restaurantName is first-write-wins; later batches never override a
//     non-empty value already set.
//   - a batch category whose CategoryName exactly matches an accumulated
//     category has its items appended to it;
//   - otherwise the category is appended with a slug id derived from its
//     name, disambiguated with -1, -2, ... against already-assigned ids.
//
// After all batches merge, every item is renumbered item_1..item_k within
// its category, discarding whatever ids the extractor supplied. Nil or
// missing collections are treated as empty; malformed batches never fail.
func Reconcile(batches []ExtractionResult) MenuData {
	doc := MenuData{Categories: []MenuCategory{}}

	for _, batch := range batches {
		if doc.RestaurantName == "" && batch.RestaurantName != "" {
			doc.RestaurantName = batch.RestaurantName
		}

		for _, cat := range batch.Categories {
			if existing := findByName(&doc, cat.CategoryName); existing != nil {
				existing.Items = append(existing.Items, cat.Items...)
				continue
			}

			doc.Categories = append(doc.Categories, MenuCategory{
				ID:           uniqueSlug(&doc, Slugify(cat.CategoryName)),
				CategoryName: cat.CategoryName,
				Items:        append([]MenuItem{}, cat.Items...),
			})
		}
	}

	for ci := range doc.Categories {
		renumberItems(&doc.Categories[ci])
	}

	return doc
}

func findByName(doc *MenuData, name string) *MenuCategory {
	for i := range doc.Categories {
		if doc.Categories[i].CategoryName == name {
			return &doc.Categories[i]
		}
	}
	return nil
}

// uniqueSlug appends -1, -2, ... until the slug no longer collides with a
// category id already assigned in the document.
func uniqueSlug(doc *MenuData, base string) string {
	id := base
	for counter := 1; doc.FindCategory(id) != nil; counter++ {
		id = fmt.Sprintf("%s-%d", base, counter)
	}
	return id
}

// renumberItems assigns positional item_<n> ids in current item order.
func renumberItems(cat *MenuCategory) {
	for i := range cat.Items {
		cat.Items[i].ID = fmt.Sprintf("item_%d", i+1)
	}
}
