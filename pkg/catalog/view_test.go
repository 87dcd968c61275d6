package catalog_test

import (
	"testing"

	"github.com/shashiranjanraj/vendora/pkg/catalog"
)

func viewOver(n int) *catalog.View {
	products := make([]catalog.Product, n)
	for i := range products {
		cat := "Electronics"
		if i%2 == 1 {
			cat = "Clothing"
		}
		products[i] = catalog.Product{ID: i + 1, Name: "Item", Category: cat}
	}
	return catalog.NewView(products, demoCategories())
}

func TestViewDefaults(t *testing.T) {
	v := viewOver(17)

	if v.Category() != catalog.AllCategories {
		t.Errorf("expected category %q, got %q", catalog.AllCategories, v.Category())
	}
	if v.Page() != 1 {
		t.Errorf("expected page 1, got %d", v.Page())
	}
	if got := v.TotalPages(); got != 3 {
		t.Errorf("expected 3 pages of 17 items, got %d", got)
	}
	if got := len(v.Visible()); got != catalog.DefaultPageSize {
		t.Errorf("expected a full first page, got %d items", got)
	}
}

func TestViewSetCategoryResetsPage(t *testing.T) {
	v := viewOver(17)
	v.SetPage(3)

	v.SetCategory("clothing")
	if v.Page() != 1 {
		t.Errorf("expected page reset to 1, got %d", v.Page())
	}
	if got := len(v.Filtered()); got != 8 {
		t.Errorf("expected 8 clothing items, got %d", got)
	}
}

func TestViewSetQueryResetsPage(t *testing.T) {
	v := viewOver(17)
	v.SetPage(2)

	v.SetQuery("item")
	if v.Page() != 1 {
		t.Errorf("expected page reset to 1, got %d", v.Page())
	}
}

func TestViewSetPageClamps(t *testing.T) {
	v := viewOver(17) // 3 pages

	v.SetPage(99)
	if v.Page() != 3 {
		t.Errorf("expected clamp to 3, got %d", v.Page())
	}
	v.SetPage(-5)
	if v.Page() != 1 {
		t.Errorf("expected clamp to 1, got %d", v.Page())
	}
}

func TestViewWindowHidesSinglePage(t *testing.T) {
	v := viewOver(5)
	if got := v.Window(); got != nil {
		t.Errorf("expected no pagination control for one page, got %v", got)
	}
}

// Narrowing the filter on a later page must land the user on a valid page.
func TestViewFilterFromLastPage(t *testing.T) {
	v := viewOver(17)
	v.SetPage(3)

	v.SetCategory("electronics") // 9 items → 2 pages
	if v.Page() != 1 {
		t.Errorf("expected page 1 after filtering, got %d", v.Page())
	}
	if got := len(v.Visible()); got != 8 {
		t.Errorf("expected a full page of electronics, got %d", got)
	}
}
