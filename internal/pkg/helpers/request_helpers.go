package helpers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrInvalidLimit is returned when a limit query parameter is not a non-negative integer.
var ErrInvalidLimit = errors.New("limit must be a non-negative integer")

// ParseIDParam reads a positive int64 path parameter. ok is false for anything else.
func ParseIDParam(c *gin.Context, name string) (id int64, ok bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseLimitParam extracts the "limit" query parameter.
// Absent or empty yields defaultLimit; values above maxLimit are clamped.
func ParseLimitParam(c *gin.Context, defaultLimit, maxLimit int) (int, error) {
	raw, present := c.GetQuery("limit")
	if !present || raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, ErrInvalidLimit
	}

	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit, nil
}
