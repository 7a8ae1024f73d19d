package utils

import (
	"github.com/yukikurage/dashboard-demo-api/internal/constants"
)

// PaginationParams holds a resolved page window over a collection
type PaginationParams struct {
	Page       int
	Limit      int
	Offset     int
	TotalPages int
}

// TotalPages returns ceil(total/limit), never less than one
func TotalPages(total, limit int) int {
	if limit < constants.MinPageSize {
		limit = constants.MinPageSize
	}
	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

// GetPaginationParams clamps page into [1, total pages] and computes the offset
func GetPaginationParams(page, limit, total int) PaginationParams {
	if limit < constants.MinPageSize {
		limit = constants.MinPageSize
	}
	totalPages := TotalPages(total, limit)

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return PaginationParams{
		Page:       page,
		Limit:      limit,
		Offset:     (page - 1) * limit,
		TotalPages: totalPages,
	}
}

// Window returns the [start, end) bounds of the page inside a slice of length total
func (p PaginationParams) Window(total int) (int, int) {
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}
