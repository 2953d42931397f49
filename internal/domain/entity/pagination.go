package entity

// DefaultPageSize is how many listings one page holds unless configured otherwise.
const DefaultPageSize = 6

// DefaultPageWindow is how many numbered page buttons are shown at most.
const DefaultPageWindow = 5

// ListingPage is one page of listings along with the totals of the whole table.
type ListingPage struct {
	Listings   []*Listing
	Page       int
	PageSize   int
	TotalCount int64
	TotalPages int
}

// TotalPages returns ceil(count/size); zero rows give zero pages.
func TotalPages(count int64, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}

	return int((count + int64(size) - 1) / int64(size))
}

// ClampPage maps anything below the first page onto page 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

// PageOffset returns the zero-based row offset of page.
func PageOffset(page, size int) int {
	return (ClampPage(page) - 1) * size
}

// HasPrevious reports whether a page exists before current.
func HasPrevious(current int) bool {
	return current > 1
}

// HasNext reports whether a page exists after current.
func HasNext(current, total int) bool {
	return current < total
}

// PageWindow returns the page numbers to render as buttons: at most maxButtons
// consecutive pages, centered on current where possible and clamped to [1, total].
func PageWindow(current, total, maxButtons int) []int {
	if total <= 0 || maxButtons <= 0 {
		return []int{}
	}

	if total <= maxButtons {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}

		return pages
	}

	current = min(max(current, 1), total)
	start := max(current-maxButtons/2, 1)
	end := start + maxButtons - 1
	if end > total {
		end = total
		start = end - maxButtons + 1
	}

	pages := make([]int, 0, maxButtons)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return pages
}
