package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// intParam parses a numeric query parameter. Absent or malformed values
// yield 0, which the query engine treats as "criterion not present".
func intParam(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// csvParam parses a comma-separated query parameter into trimmed tags.
func csvParam(c echo.Context, name string) []string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
