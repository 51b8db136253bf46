package domain

type Pagination struct {
	Page     int
	PageSize int
}

func NewPagination(page, pageSize int) Pagination {
	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages rounds up, a trailing partial page still counts.
func (p Pagination) TotalPages(totalItems int) int {
	return (totalItems + p.PageSize - 1) / p.PageSize
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

func (p Pagination) HasNext(totalPages int) bool {
	return p.Page < totalPages
}
