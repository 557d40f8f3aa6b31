package pagination

import "gorm.io/gorm"

const (
	// DefaultPageSize is used when a request leaves page_size empty.
	DefaultPageSize = 20
	// MaxPageSize caps page_size for callers that bypass query binding.
	MaxPageSize = 100
)

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Normalize returns a copy with the first page and DefaultPageSize filled in
// for missing values and PageSize clamped to MaxPageSize.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.PageSize < 1:
		p.PageSize = DefaultPageSize
	case p.PageSize > MaxPageSize:
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the SQL OFFSET for the current page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse is one page of a user's list along with totals for the whole list.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// NewPageResponse builds the response for req. Data is never null in JSON.
func NewPageResponse[T any](req PageRequest, data []T, totalItems int64) *PageResponse[T] {
	req = req.Normalize()
	if data == nil {
		data = []T{}
	}
	size := int64(req.PageSize)
	totalPages := int((totalItems + size - 1) / size)
	return &PageResponse[T]{
		Data:       data,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for req.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	req = req.Normalize()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}
