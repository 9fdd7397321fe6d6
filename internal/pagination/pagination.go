// Package pagination normalizes page/per_page query parameters and derives
// list-envelope metadata. Invalid or out-of-range values fall back to the
// defaults instead of erroring.
package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Normalize parses raw query values. Unparsable input takes the default,
// page is floored at 1 and per_page outside [1,MaxPerPage] resets to the
// default rather than clamping.
func Normalize(rawPage, rawPerPage string) (page, perPage int) {
	page = atoiOr(rawPage, DefaultPage)
	perPage = atoiOr(rawPerPage, DefaultPerPage)
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}
	return page, perPage
}

// Offset converts a normalized page into a row offset. Pages large enough to
// overflow the multiplication saturate at MaxInt rather than wrapping negative.
func Offset(page, perPage int) int {
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// TotalPages is the ceiling of total/perPage; zero rows mean zero pages.
func TotalPages(total int64, perPage int) int {
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func atoiOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
