package pagination

import (
	"math"
	"strings"

	"gorm.io/gorm"
)

// sortColumns maps accepted sort keys to their column.
var sortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// PageRequest holds pagination parameters parsed from query strings.
// Sort is a column key, optionally prefixed with "-" for descending order.
type PageRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Sort     string `form:"sort" binding:"omitempty,oneof=name -name created_at -created_at updated_at -updated_at"`
}

// Defaults fills in default values when page, page_size or sort are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
	if p.Sort == "" {
		p.Sort = "-created_at"
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// OrderClause returns the SQL ORDER BY expression for Sort. Unknown keys
// fall back to newest first.
func (p *PageRequest) OrderClause() string {
	key, desc := strings.CutPrefix(p.Sort, "-")
	col, ok := sortColumns[key]
	if !ok {
		return "created_at DESC, id DESC"
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return col + " " + dir + ", id " + dir
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Paginate returns a GORM scope that applies ORDER BY, OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(req.OrderClause()).Offset(req.Offset()).Limit(req.PageSize)
	}
}
