package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// DefaultPageSize is used when the caller does not specify one.
const DefaultPageSize = 20

// SortLogs returns entries stably sorted by the named column. Rows with
// equal keys keep their original relative order in either direction, so
// re-renders reproduce identical orderings. Unknown column names fall back
// to the date. The input slice is not modified; cached result sets keep
// their database order.
func SortLogs(entries []domain.LogEntry, column string, ascending bool) []domain.LogEntry {
	sorted := slices.Clone(entries)
	compare := logComparator(column)
	slices.SortStableFunc(sorted, func(a, b domain.LogEntry) int {
		c := compare(a, b)
		if !ascending {
			c = -c
		}
		return c
	})
	return sorted
}

// Paginate slices rows into the requested 1-based page, clamping the page
// number into [1, totalPages]. It returns the page rows, the effective page
// number and the total page count, which is zero when there are no rows.
func Paginate(entries []domain.LogEntry, page, pageSize int) ([]domain.LogEntry, int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if len(entries) == 0 {
		return nil, 1, 0
	}

	totalPages := (len(entries) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(entries))
	return entries[start:end], page, totalPages
}

func logComparator(column string) func(a, b domain.LogEntry) int {
	switch column {
	case "id":
		return func(a, b domain.LogEntry) int { return cmp.Compare(a.ID, b.ID) }
	case "user":
		return func(a, b domain.LogEntry) int { return strings.Compare(a.UserName, b.UserName) }
	case "activity":
		return func(a, b domain.LogEntry) int { return strings.Compare(a.ActivityName, b.ActivityName) }
	case "quantity":
		return func(a, b domain.LogEntry) int { return cmp.Compare(a.Quantity, b.Quantity) }
	case "emission":
		return func(a, b domain.LogEntry) int { return compareFloatPtr(a.CalculatedEmission, b.CalculatedEmission) }
	case "city":
		return func(a, b domain.LogEntry) int { return compareStringPtr(a.City, b.City) }
	case "country":
		return func(a, b domain.LogEntry) int { return compareStringPtr(a.Country, b.Country) }
	default:
		// ISO dates compare correctly as strings.
		return func(a, b domain.LogEntry) int { return strings.Compare(a.Date, b.Date) }
	}
}

// Nil sorts before any value so rows without a location or emission group
// together at one end.
func compareFloatPtr(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

func compareStringPtr(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(*a, *b)
}
