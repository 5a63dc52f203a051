// Package transport holds small helpers shared by the HTTP handlers.
package transport

import (
	"strconv"

	"storefront-be/internal/apperr"
	"storefront-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error writes the JSON error body for err using the apperr status mapping.
// Unclassified errors are logged and surfaced as a generic 500.
func Error(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()

	if apperr.KindOf(err) == apperr.KindInternal {
		logger.FromCtx(c.Request.Context()).Error("internal error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		message = "internal server error"
	}

	c.JSON(status, gin.H{"error": message})
}

// Pagination is the envelope returned by paginated list endpoints.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count for a result set.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// ParsePagination reads page/limit query params, applying defaults and the
// hard cap of 100 items per page.
func ParsePagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page = atoiDefault(c.Query("page"), 1)
	limit = atoiDefault(c.Query("limit"), defaultLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func atoiDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
