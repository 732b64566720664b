// Package pagination derives the visible window of an in-memory sequence from a PageState.
// Everything here is a pure function of its inputs: state goes in, new state comes out.
package pagination

import (
	"errors"
	"fmt"
	"slices"

	"github.com/maxviazov/fundtable/internal/model"
)

// ErrInvalidPageSize is returned when a page size outside model.PageSizes is requested.
var ErrInvalidPageSize = errors.New("invalid page size")

// Page represents a simple limit/offset window over a sequence.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries one page of items and the length of the whole sequence.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// TotalPages is ceil(total/size); an empty sequence has zero pages.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// IsValidPageSize reports whether n is one of the selectable page sizes.
func IsValidPageSize(n int) bool {
	return slices.Contains(model.PageSizes, n)
}

// GoToPage moves to target when 1 <= target <= TotalPages(total, size).
// Out-of-range targets leave the state untouched; the bool reports whether anything changed.
func GoToPage(s model.PageState, target, total int) (model.PageState, bool) {
	if target < 1 || target > TotalPages(total, s.PageSize) {
		return s, false
	}
	s.CurrentPage = target
	return s, true
}

// Next is GoToPage(current + 1).
func Next(s model.PageState, total int) (model.PageState, bool) {
	return GoToPage(s, s.CurrentPage+1, total)
}

// Prev is GoToPage(current - 1).
func Prev(s model.PageState, total int) (model.PageState, bool) {
	return GoToPage(s, s.CurrentPage-1, total)
}

// SetPageSize switches to size n and always returns to the first page.
func SetPageSize(s model.PageState, n int) (model.PageState, error) {
	if !IsValidPageSize(n) {
		return s, fmt.Errorf("%w: %d", ErrInvalidPageSize, n)
	}
	return model.PageState{CurrentPage: 1, PageSize: n}, nil
}

// Window converts the state into its limit/offset form.
func Window(s model.PageState) Page {
	return Page{Limit: s.PageSize, Offset: (s.CurrentPage - 1) * s.PageSize}
}

// Slice returns items[(page-1)*size : page*size], clipped to the sequence bounds.
// It is recomputed on every call and shares the backing array with items.
func Slice[T any](items []T, s model.PageState) []T {
	w := Window(s)
	if w.Limit <= 0 || w.Offset < 0 || w.Offset >= len(items) {
		return nil
	}
	end := min(w.Offset+w.Limit, len(items))
	return items[w.Offset:end:end]
}

// Paginate bundles the visible slice with the total length.
func Paginate[T any](items []T, s model.PageState) PageResult[T] {
	return PageResult[T]{Items: Slice(items, s), Total: len(items)}
}
