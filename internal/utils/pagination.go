package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams reads page and limit from the query string. It returns
// nil when the client asked for neither, meaning the full list is wanted.
// Out-of-range values fall back to the defaults.
func GetPaginationParams(c *gin.Context) *PaginationParams {
	pageRaw, hasPage := c.GetQuery("page")
	limitRaw, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		return nil
	}

	page, err := strconv.Atoi(pageRaw)
	if err != nil || page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	limit, err := strconv.Atoi(limitRaw)
	if err != nil || limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return &PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// SetTotalCount exposes the unpaginated row count to the client.
func SetTotalCount(c *gin.Context, total int64) {
	c.Header(constants.HeaderTotalCount, strconv.FormatInt(total, 10))
}
