package repository

// ListQuery represents common query parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}

// offset returns the row offset for the current page
func (q *ListQuery) offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}

var sortable = map[string]bool{
	"created_at":  true,
	"grand_total": true,
	"status":      true,
	"customer_id": true,
}

// order returns a safe ORDER BY clause
func (q *ListQuery) order() string {
	col := "created_at"
	if sortable[q.SortBy] {
		col = q.SortBy
	}
	if q.SortDir == "asc" {
		return col + " ASC"
	}
	return col + " DESC"
}
