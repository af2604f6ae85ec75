package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/castillotomupwork/task/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page  int
	Limit int
}

// allowedSortFields is the whitelist of sortable task columns.
var allowedSortFields = map[string]bool{
	"title":    true,
	"dueDate":  true,
	"priority": true,
	"status":   true,
}

// GetPaginationParams extracts pagination parameters from the request.
// Missing, malformed or out-of-range values clamp to the defaults rather
// than erroring.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = constants.DefaultPage
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{Page: page, Limit: limit}
}

// GetSortParams extracts the sort field and order from the request. An
// unrecognized field silently falls back to dueDate; any order other than
// "desc" means ascending.
func GetSortParams(c *gin.Context) (sortBy, order string) {
	sortBy = c.Query("sortBy")
	if !allowedSortFields[sortBy] {
		sortBy = "dueDate"
	}

	order = "asc"
	if c.Query("order") == "desc" {
		order = "desc"
	}

	return sortBy, order
}
