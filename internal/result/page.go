package result

// Page is a single page of an ordered-by-recency result set together with
// the metadata needed to render pagination controls.
type Page[T any] struct {
	Items      []T
	TotalCount int64
	TotalPages int
	Page       int
	PageSize   int
}

// PageBounds translates a 1-based (page, size) pair into the half-open item
// window [skip, skip+limit). Inputs below 1 are clamped to 1.
func PageBounds(page, size int) (skip, limit int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	return (page - 1) * size, size
}

// NewPage assembles a Page from the fetched window and the total count.
// A page number beyond the last page yields an empty item set with correct
// metadata, not an error.
func NewPage[T any](items []T, total int64, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return Page[T]{
		Items:      items,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   size,
	}
}
