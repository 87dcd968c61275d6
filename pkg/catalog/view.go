package catalog

// View is the browsing state of one catalogue screen: the fixed source list,
// the selected category and query, and the current page. Every filter change
// resets the page to 1 so the user never lands on an empty page.
type View struct {
	source     []Product
	categories []Category

	category string
	query    string
	page     int
	pageSize int
}

// NewView builds a View over source with page size DefaultPageSize.
func NewView(source []Product, categories []Category) *View {
	return &View{
		source:     source,
		categories: categories,
		category:   AllCategories,
		page:       1,
		pageSize:   DefaultPageSize,
	}
}

// Categories returns the filterable category list.
func (v *View) Categories() []Category { return v.categories }

// Category returns the selected category slug.
func (v *View) Category() string { return v.category }

// Query returns the active search query.
func (v *View) Query() string { return v.query }

// Page returns the current 1-indexed page.
func (v *View) Page() int { return v.page }

// SetCategory selects a category slug and resets to page 1.
func (v *View) SetCategory(slug string) {
	v.category = slug
	v.page = 1
}

// SetQuery sets the search query and resets to page 1.
func (v *View) SetQuery(query string) {
	v.query = query
	v.page = 1
}

// SetPage moves to page. Out-of-range values are clamped into
// [1, TotalPages] so navigation controls can be wired naively.
func (v *View) SetPage(page int) {
	total := v.TotalPages()
	if page < 1 {
		page = 1
	}
	if total > 0 && page > total {
		page = total
	}
	v.page = page
}

// Filtered recomputes the filtered list from the full source.
func (v *View) Filtered() []Product {
	return Filter(v.source, v.categories, v.category, v.query)
}

// Visible returns the products on the current page.
func (v *View) Visible() []Product {
	return Paginate(v.Filtered(), v.page, v.pageSize)
}

// TotalPages returns the number of pages of the filtered list.
func (v *View) TotalPages() int {
	return TotalPages(len(v.Filtered()), v.pageSize)
}

// Window returns the page numbers a pagination control should render.
func (v *View) Window() []int {
	return PageWindow(v.page, v.TotalPages())
}
