package model

// Page wraps one page of a paginated listing.
type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}

// HasMore reports whether pages beyond this one exist.
func (p Page[T]) HasMore() bool {
	return p.Page < p.TotalPages
}
