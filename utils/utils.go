package utils

import "math"

// Pagination represents the pagination details.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// CreatePagination creates a Pagination object.
func CreatePagination(totalItems, page, pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = 10 // Default page size
	}
	if page <= 0 {
		page = 1 // Default page
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return &Pagination{
		TotalItems:  totalItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}

// Round2 rounds a monetary amount to 2 decimal places. Applied at function
// boundaries only, never mid-computation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds a ratio (margin, share, z-score) to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
