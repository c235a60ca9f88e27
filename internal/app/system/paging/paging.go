// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when the client does not supply one.
const DefaultLimit = 12

// MaxLimit caps client-requested page sizes.
const MaxLimit = 100

// Page holds parsed 1-based pagination parameters.
type Page struct {
	Number int // 1-based page number
	Limit  int
}

// Parse reads the "page" and "limit" query parameters, falling back to
// page 1 and defaultLimit (DefaultLimit when defaultLimit <= 0) for
// absent or invalid values. Limits above MaxLimit are clamped.
func Parse(r *http.Request, defaultLimit int) Page {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}

	p := Page{Number: 1, Limit: defaultLimit}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Number = n
		}
	}
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Page) Skip() int64 {
	return int64(p.Number-1) * int64(p.Limit)
}

// TotalPages returns the page count for a total row count, rounding up.
func (p Page) TotalPages(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total + int64(p.Limit) - 1) / int64(p.Limit)
}
