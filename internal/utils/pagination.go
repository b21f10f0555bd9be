package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds offset/limit parameters parsed from the query string.
type Pagination struct {
	Offset int
	Limit  int
}

// ParsePagination reads offset and limit query params with the provided
// default limit (20 for most listings, 15 for orders).
func ParsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	offset := parseInt(c.Query("offset", "0"), 0)
	limit := parseInt(c.Query("limit", strconv.Itoa(defaultLimit)), defaultLimit)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	return Pagination{Offset: offset, Limit: limit}
}

// TotalPages returns the page count for a total row count and page size.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
