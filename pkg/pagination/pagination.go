// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import (
	"net/http"
	"strconv"
)

// DefaultPageSize is the number of items served per page.
const DefaultPageSize = 10

// Page returns items[(page-1)*size : page*size], clamped to the slice.
// Pages start at 1. An empty input, a page past the end, or a non-positive
// page or size yields an empty, non-nil slice.
func Page[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 || len(items) == 0 {
		return []T{}
	}
	// Compare page indexes rather than offsets so huge pages cannot overflow.
	if page-1 > (len(items)-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	end := len(items)
	if end-start > size {
		end = start + size
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// FromRequest reads the page query parameter, defaulting to 1 when it is
// absent or not an integer.
func FromRequest(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
