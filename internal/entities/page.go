package entities

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type Page struct {
	Number int
	Limit  int
}

// Normalize приводит номер страницы и лимит к допустимым значениям.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

type Pagination struct {
	Page  int
	Limit int
	Total int64
	Pages int64
}

func NewPagination(page Page, total int64) Pagination {
	pages := int64(0)
	if page.Limit > 0 {
		pages = (total + int64(page.Limit) - 1) / int64(page.Limit)
	}
	return Pagination{
		Page:  page.Number,
		Limit: page.Limit,
		Total: total,
		Pages: pages,
	}
}

type List[T any] struct {
	Items      []T
	Pagination Pagination
}
