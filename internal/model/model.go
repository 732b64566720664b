// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; the only behavior here is on LoadStatus.
package model

import "github.com/shopspring/decimal"

// Record is one funding entry returned by the upstream data source.
// Keys mirror the upstream payload; SNo is decoded but never drives the displayed ordinal.
type Record struct {
	SNo              *int            `json:"s.no,omitempty"`
	PercentageFunded decimal.Decimal `json:"percentage.funded"`
	AmountPledged    decimal.Decimal `json:"amt.pledged"`
}

// Allowed page sizes offered by the page-size selector, in display order.
var PageSizes = []int{5, 10, 15, 25}

const (
	DefaultPage     = 1
	DefaultPageSize = 5
)

// PageState is the pair of numbers that controls the visible slice of a table.
type PageState struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// DefaultPageState returns the state a table starts with on mount.
func DefaultPageState() PageState {
	return PageState{CurrentPage: DefaultPage, PageSize: DefaultPageSize}
}

// LoadState is the tri-state flag tracking the single fetch of a table.
type LoadState string

const (
	LoadStateLoading LoadState = "loading"
	LoadStateReady   LoadState = "ready"
	LoadStateFailed  LoadState = "failed"
)

// LoadStatus pairs the load state with the failure message, if any.
type LoadStatus struct {
	State   LoadState `json:"state"`
	Message string    `json:"message,omitempty"`
}

// Loading is the status every table starts with.
func Loading() LoadStatus { return LoadStatus{State: LoadStateLoading} }

// Ready marks a successful load.
func Ready() LoadStatus { return LoadStatus{State: LoadStateReady} }

// Failed marks a failed load with the user-visible message.
func Failed(msg string) LoadStatus { return LoadStatus{State: LoadStateFailed, Message: msg} }

// IsTerminal reports whether the load has finished, successfully or not.
func (s LoadStatus) IsTerminal() bool {
	return s.State == LoadStateReady || s.State == LoadStateFailed
}
