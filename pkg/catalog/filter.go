package catalog

import (
	"strings"

	"github.com/shashiranjanraj/vendora/pkg/collection"
)

// Filter narrows source down to the products matching the selected category
// slug and free-text query. It always starts from the full source list, never
// from a previous result, so repeated filtering cannot compound.
//
// A slug of "all" (or one naming no known category) keeps every category.
// A non-empty query matches case-insensitively against name or category.
func Filter(source []Product, categories []Category, slug, query string) []Product {
	filtered := source

	if slug != AllCategories {
		if cat, ok := collection.First(categories, func(c Category) bool { return c.Slug == slug }); ok {
			filtered = collection.Filter(filtered, func(p Product) bool {
				// Catalogues tag products with either the display name or
				// the slug depending on the source; accept both.
				return p.Category == cat.Name || strings.EqualFold(p.Category, cat.Slug)
			})
		}
	}

	if query != "" {
		q := strings.ToLower(query)
		filtered = collection.Filter(filtered, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Category), q)
		})
	}

	return filtered
}
