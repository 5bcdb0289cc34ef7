package domain

// Page describes one page of a paginated listing.
type Page struct {
	Total  int
	Page   int
	Pages  int
	Limit  int
	Offset int
}

// NewPage computes page metadata from a total row count and limit/offset.
// Limit must be positive; callers normalize it before pagination.
func NewPage(total, limit, offset int) Page {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return Page{
		Total:  total,
		Page:   offset/limit + 1,
		Pages:  pages,
		Limit:  limit,
		Offset: offset,
	}
}
