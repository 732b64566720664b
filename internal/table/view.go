package table

import (
	"github.com/maxviazov/fundtable/internal/model"
	"github.com/maxviazov/fundtable/internal/pagination"
)

// Kind selects one of the four mutually exclusive views.
type Kind string

const (
	KindLoading Kind = "loading"
	KindError   Kind = "error"
	KindEmpty   Kind = "empty"
	KindTable   Kind = "table"
)

const (
	Title            = "Market Record"
	LoadingMessage   = "Loading..."
	EmptyMessage     = "Data not available"
	ColumnOrdinal    = "S.No."
	ColumnPercentage = "Percentage Funded"
	ColumnAmount     = "Amount Pledged"
)

// Columns is the table header in display order.
var Columns = []string{ColumnOrdinal, ColumnPercentage, ColumnAmount}

// Row is one rendered table line.
type Row struct {
	Ordinal    int    `json:"ordinal"`
	Percentage string `json:"percentage_funded"`
	Amount     string `json:"amount_pledged"`
}

// View is everything a renderer needs; nothing in it refers back to the component.
type View struct {
	ID      string           `json:"id,omitempty"`
	Kind    Kind             `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message,omitempty"`
	Status  model.LoadStatus `json:"status"`

	Columns      []string `json:"columns,omitempty"`
	Rows         []Row    `json:"rows,omitempty"`
	CurrentPage  int      `json:"current_page,omitempty"`
	PageSize     int      `json:"page_size,omitempty"`
	PageSizes    []int    `json:"page_sizes,omitempty"`
	TotalPages   int      `json:"total_pages,omitempty"`
	TotalRecords int      `json:"total_records,omitempty"`
	HasPrev      bool     `json:"has_prev,omitempty"`
	HasNext      bool     `json:"has_next,omitempty"`
}

// Render picks the view for (status, len(records)) and, for the table view,
// formats the rows visible under state.
func Render(status model.LoadStatus, records []model.Record, state model.PageState, f *Formatter) View {
	v := View{Title: Title, Status: status}
	switch {
	case status.State == model.LoadStateLoading:
		v.Kind, v.Message = KindLoading, LoadingMessage
		return v
	case status.State == model.LoadStateFailed:
		v.Kind, v.Message = KindError, status.Message
		return v
	case len(records) == 0:
		v.Kind, v.Message = KindEmpty, EmptyMessage
		return v
	}

	if f == nil {
		f = DefaultFormatter()
	}
	page := pagination.Paginate(records, state)
	offset := pagination.Window(state).Offset
	rows := make([]Row, 0, len(page.Items))
	for i, r := range page.Items {
		rows = append(rows, Row{
			Ordinal:    offset + i + 1,
			Percentage: f.Percent(r.PercentageFunded),
			Amount:     f.Amount(r.AmountPledged),
		})
	}

	total := pagination.TotalPages(page.Total, state.PageSize)
	v.Kind = KindTable
	v.Columns = Columns
	v.Rows = rows
	v.CurrentPage = state.CurrentPage
	v.PageSize = state.PageSize
	v.PageSizes = model.PageSizes
	v.TotalPages = total
	v.TotalRecords = page.Total
	v.HasPrev = state.CurrentPage > 1
	v.HasNext = state.CurrentPage < total
	return v
}
