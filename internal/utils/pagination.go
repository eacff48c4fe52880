package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/contest-tracker/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// NewPaginationParams clamps page and limit and computes the offset.
// An out-of-range limit falls back to defaultLimit.
func NewPaginationParams(page, limit, defaultLimit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = defaultLimit
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context, defaultLimit int) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultLimit)))

	return NewPaginationParams(page, limit, defaultLimit)
}

// TotalPages returns ceil(total/pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}
