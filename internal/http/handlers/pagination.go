package handlers

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type PageMeta struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// Page is the {meta, data} envelope of list endpoints.
type Page[T any] struct {
	Meta PageMeta `json:"meta"`
	Data []T      `json:"data"`
}

// Paginate slices items into one page. It clamps its inputs independently
// of request validation: a non-positive limit means the default, limits
// above the maximum are capped and a negative offset starts at zero. Total
// is always the size of items.
func Paginate[T any](items []T, limit, offset int) Page[T] {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	limit = min(limit, maxPageLimit)
	offset = max(offset, 0)

	start := min(offset, len(items))
	end := min(start+limit, len(items))

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{
		Meta: PageMeta{Limit: limit, Offset: offset, Total: len(items)},
		Data: data,
	}
}
