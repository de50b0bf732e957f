package port

import (
	"fmt"
	"math"

	"foodshare/internal/core/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps the page size of every listing and the leaderboard.
	MaxLimit = 100
	// MaxPage keeps (page-1)*limit inside int for any accepted limit.
	MaxPage = math.MaxInt32
)

// Page describes where a result page sits in the full result set.
type Page struct {
	Total           int64 `json:"total"`
	CurrentPage     int   `json:"currentPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	PreviousPage    *int  `json:"previousPage"`
	NextPage        *int  `json:"nextPage"`
	LastPage        int   `json:"lastPage"`
}

// Normalize applies the default page and limit to non-positive values,
// clamps limit to MaxLimit and returns both with the row offset. A page past
// MaxPage is rejected with domain.ErrInvalidInput.
func Normalize(page, limit int) (int, int, int, error) {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		return 0, 0, 0, fmt.Errorf("%w: page must not exceed %d", domain.ErrInvalidInput, MaxPage)
	}
	limit = ClampLimit(limit)
	return page, limit, (page - 1) * limit, nil
}

// ClampLimit maps non-positive limits to DefaultLimit and caps the rest at
// MaxLimit.
func ClampLimit(limit int) int {
	switch {
	case limit < 1:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// NewPage builds pagination metadata for a normalized page and limit.
func NewPage(total int64, page, limit int) Page {
	last := int((total + int64(limit) - 1) / int64(limit))
	p := Page{
		Total:           total,
		CurrentPage:     page,
		HasPreviousPage: page > 1,
		HasNextPage:     page < last,
		LastPage:        last,
	}
	if p.HasPreviousPage {
		prev := page - 1
		p.PreviousPage = &prev
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	return p
}
