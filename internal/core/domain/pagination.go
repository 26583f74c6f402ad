package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage keeps the row offset far from integer and OFFSET limits.
	MaxPage = 100_000
)

type Page struct {
	Number int
	Limit  int
}

// NewPage clamps client supplied values to sane bounds.
func NewPage(number, limit, defaultLimit int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if number > MaxPage {
		number = MaxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Page{Number: number, Limit: limit}
}

func (p Page) Offset() uint64 {
	return uint64(p.Number-1) * uint64(p.Limit)
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	Total       int64
	HasNext     bool
	HasPrev     bool
}

func NewPagination(p Page, total int64) Pagination {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Pagination{
		CurrentPage: p.Number,
		TotalPages:  pages,
		Total:       total,
		HasNext:     int64(p.Number)*int64(p.Limit) < total,
		HasPrev:     p.Number > 1,
	}
}
