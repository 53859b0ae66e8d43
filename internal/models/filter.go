package models

// SortField is the closed set of columns a part listing can be ordered by.
type SortField string

const (
	SortByName       SortField = "name"
	SortByPartNumber SortField = "partNumber"
	SortByQuantity   SortField = "quantity"
	SortByStatus     SortField = "status"
	SortByUpdatedAt  SortField = "updatedAt"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByName, SortByPartNumber, SortByQuantity, SortByStatus, SortByUpdatedAt:
		return true
	}
	return false
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

const (
	DefaultPageLimit     = 20
	MaxPageLimit         = 500
	DefaultActivityLimit = 50
	RecentActivityLimit  = 20
)

// PartsFilter narrows and orders a part listing. Zero values mean "any" for
// predicates and the defaults for sort and paging.
type PartsFilter struct {
	Search     string     `json:"search,omitempty"`
	Status     PartStatus `json:"status,omitempty" validate:"omitempty,oneof=in_stock low_stock out_of_stock"`
	CategoryID int64      `json:"categoryId,omitempty" validate:"gte=0"`
	SortBy     SortField  `json:"sortBy,omitempty" validate:"omitempty,oneof=name partNumber quantity status updatedAt"`
	SortOrder  SortOrder  `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
	Page       int        `json:"page,omitempty" validate:"gte=0"`
	Limit      int        `json:"limit,omitempty" validate:"gte=0"`
}

// WithDefaults fills unset sort and paging fields.
func (f PartsFilter) WithDefaults() PartsFilter {
	if f.SortBy == "" {
		f.SortBy = SortByUpdatedAt
	}
	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
	f.Page, f.Limit = NormalizePage(f.Page, f.Limit, DefaultPageLimit)
	return f
}

// Offset is the number of rows skipped before the current page.
func (f PartsFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// NormalizePage applies a 1-based page default and clamps limit to
// (0, MaxPageLimit].
func NormalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPage builds a Page and derives TotalPages as ceil(total/limit).
func NewPage[T any](data []T, total, page, limit int) *Page[T] {
	if data == nil {
		data = []T{}
	}
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &Page[T]{Data: data, Total: total, Page: page, Limit: limit, TotalPages: pages}
}
