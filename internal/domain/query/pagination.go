package query

import "strconv"

// Pagination defaults for every list endpoint
const (
	DefaultPage  = 1
	DefaultLimit = 25
)

// Window is the slice of a result set selected by page and limit
type Window struct {
	Page  int
	Limit int
	Skip  int
}

// PageRef points at an adjacent page in a paginated listing
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries the next/prev references of a listing response. A side
// is omitted when no such page exists.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// ParseWindow coerces raw page/limit parameters into a window. Non-numeric or
// non-positive values fall back to the defaults instead of failing the request.
func ParseWindow(pageStr, limitStr string) Window {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}

	return Window{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// Paginate computes the next/prev references for a total result count
func (w Window) Paginate(total int64) Pagination {
	var p Pagination
	if int64(w.Page*w.Limit) < total {
		p.Next = &PageRef{Page: w.Page + 1, Limit: w.Limit}
	}
	if w.Skip > 0 {
		p.Prev = &PageRef{Page: w.Page - 1, Limit: w.Limit}
	}
	return p
}
