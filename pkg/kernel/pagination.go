package kernel

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// OffsetPagination is a limit/offset window over an ordered result set
type OffsetPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Valid reports whether the window is within the accepted bounds
func (p OffsetPagination) Valid() bool {
	return p.Limit >= 1 && p.Limit <= MaxLimit && p.Offset >= 0
}

// Paginated is one page of results plus the total number of matches
type Paginated[T any] struct {
	Items  []T  `json:"items"`
	Limit  int  `json:"limit"`
	Offset int  `json:"offset"`
	Total  int  `json:"total"`
	Empty  bool `json:"empty"`
}

// NewPaginated builds a page; a nil slice is normalized so it serializes as []
func NewPaginated[T any](items []T, p OffsetPagination, total int) *Paginated[T] {
	if items == nil {
		items = []T{}
	}
	return &Paginated[T]{
		Items:  items,
		Limit:  p.Limit,
		Offset: p.Offset,
		Total:  total,
		Empty:  len(items) == 0,
	}
}

// MapPaginated converts the items of a page keeping its window
func MapPaginated[T, R any](page *Paginated[T], fn func(T) R) *Paginated[R] {
	out := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		out = append(out, fn(item))
	}
	return &Paginated[R]{
		Items:  out,
		Limit:  page.Limit,
		Offset: page.Offset,
		Total:  page.Total,
		Empty:  len(out) == 0,
	}
}
