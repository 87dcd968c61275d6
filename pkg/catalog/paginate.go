package catalog

import "github.com/shashiranjanraj/vendora/pkg/collection"

// DefaultPageSize is how many products a catalogue page shows.
const DefaultPageSize = 8

// Ellipsis marks a gap in a page window.
const Ellipsis = -1

// Paginate returns the 1-indexed page of size items from list.
// Out-of-range pages yield an empty slice.
func Paginate(list []Product, page, size int) []Product {
	return collection.Paginate(list, page, size)
}

// TotalPages returns ceil(n / size). Zero items means zero pages.
func TotalPages(n, size int) int {
	if size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// PageWindow returns the page numbers a pagination control should render:
// at most 5 contiguous numbers near current, prefixed with page 1 and an
// Ellipsis when the window does not start at 1, and suffixed with an Ellipsis
// and the last page when it does not end at total. An empty slice means no
// control should be rendered at all.
func PageWindow(current, total int) []int {
	if total <= 1 {
		return nil
	}

	const maxVisible = 5

	if total <= maxVisible {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + maxVisible - 1
	if end > total {
		end = total
	}

	var pages []int
	if start > 1 {
		pages = append(pages, 1, Ellipsis)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < total {
		pages = append(pages, Ellipsis, total)
	}
	return pages
}
