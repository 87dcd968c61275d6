// Package catalog holds the product listing that the storefront browses:
// a fixed in-memory product list with category filtering, case-insensitive
// search and fixed-size pagination.
package catalog

// Product is one catalogue entry. Immutable once loaded; views and the cart
// only ever hold copies.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// InStock reports whether the product can currently be added to a cart.
func (p Product) InStock() bool { return p.Stock > 0 }

// Category is a filterable product grouping.
type Category struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AllCategories is the pseudo-slug that disables category filtering.
const AllCategories = "all"
