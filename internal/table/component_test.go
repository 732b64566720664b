package table_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/fundtable/internal/loader"
	"github.com/maxviazov/fundtable/internal/model"
	"github.com/maxviazov/fundtable/internal/pagination"
	"github.com/maxviazov/fundtable/internal/table"
)

// stubLoader returns a fixed result, optionally after gate is closed or ctx ends.
type stubLoader struct {
	res   loader.Result
	gate  chan struct{}
	calls int
}

func (s *stubLoader) Load(ctx context.Context) loader.Result {
	s.calls++
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return loader.Result{Status: model.Failed(ctx.Err().Error())}
		}
	}
	return s.res
}

func record(sno, pct, amt int64) model.Record {
	n := int(sno)
	return model.Record{
		SNo:              &n,
		PercentageFunded: decimal.NewFromInt(pct),
		AmountPledged:    decimal.NewFromInt(amt),
	}
}

// sixRecords is the fixture used by the page navigation scenarios.
func sixRecords() []model.Record {
	return []model.Record{
		record(1, 80, 5000),
		record(2, 90, 8000),
		record(3, 70, 3000),
		record(4, 95, 15000),
		record(5, 60, 4000),
		record(6, 85, 7000),
	}
}

func mounted(t *testing.T, res loader.Result, opts ...table.Option) *table.Component {
	t.Helper()
	c := table.New("t1", &stubLoader{res: res}, opts...)
	c.Mount(context.Background())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx))
	return c
}

func TestComponent_StartsLoading(t *testing.T) {
	gate := make(chan struct{})
	c := table.New("t1", &stubLoader{gate: gate, res: loader.Result{Records: sixRecords(), Status: model.Ready()}})
	c.Mount(context.Background())

	v := c.View()
	assert.Equal(t, table.KindLoading, v.Kind)
	assert.Equal(t, "Loading...", v.Message)
	assert.Equal(t, model.DefaultPageState(), c.State())

	close(gate)
	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, table.KindTable, c.View().Kind)
}

func TestComponent_PageNavigationScenario(t *testing.T) {
	c := mounted(t, loader.Result{Records: sixRecords(), Status: model.Ready()})

	v := c.View()
	require.Equal(t, table.KindTable, v.Kind)
	require.Len(t, v.Rows, 5)
	assert.Equal(t, "80%", v.Rows[0].Percentage)
	assert.Equal(t, "£5,000", v.Rows[0].Amount)
	assert.Equal(t, 2, v.TotalPages)
	assert.False(t, v.HasPrev)
	assert.True(t, v.HasNext)

	require.True(t, c.Next())
	v = c.View()
	require.Len(t, v.Rows, 1)
	assert.Equal(t, 6, v.Rows[0].Ordinal)
	assert.Equal(t, "85%", v.Rows[0].Percentage)
	assert.Equal(t, "£7,000", v.Rows[0].Amount)

	assert.False(t, c.Next(), "next on last page is a no-op")
	assert.Equal(t, 2, c.State().CurrentPage)
	assert.True(t, c.Prev())
	assert.False(t, c.Prev(), "prev on first page is a no-op")
	assert.Equal(t, 1, c.State().CurrentPage)
}

func TestComponent_GoToPageBounds(t *testing.T) {
	c := mounted(t, loader.Result{Records: sixRecords(), Status: model.Ready()})
	assert.False(t, c.GoToPage(0))
	assert.False(t, c.GoToPage(3))
	assert.True(t, c.GoToPage(2))
	assert.Equal(t, 2, c.State().CurrentPage)
}

func TestComponent_SetPageSizeResetsPage(t *testing.T) {
	recs := make([]model.Record, 0, 40)
	for i := 0; i < 40; i++ {
		recs = append(recs, record(int64(i), int64(i), int64(i*100)))
	}
	c := mounted(t, loader.Result{Records: recs, Status: model.Ready()})

	require.True(t, c.GoToPage(5))
	require.NoError(t, c.SetPageSize(15))
	assert.Equal(t, model.PageState{CurrentPage: 1, PageSize: 15}, c.State())
	assert.Equal(t, 3, c.TotalPages())
	assert.Len(t, c.Visible(), 15)

	err := c.SetPageSize(7)
	assert.True(t, errors.Is(err, pagination.ErrInvalidPageSize))
	assert.Equal(t, 15, c.State().PageSize)
}

func TestComponent_EmptyRecords(t *testing.T) {
	c := mounted(t, loader.Result{Records: []model.Record{}, Status: model.Ready()})
	v := c.View()
	assert.Equal(t, table.KindEmpty, v.Kind)
	assert.Equal(t, "Data not available", v.Message)
	assert.Empty(t, v.Rows)
	assert.Equal(t, 0, c.TotalPages())
	assert.False(t, c.GoToPage(1))
	assert.False(t, c.Next())
}

func TestComponent_FailedLoad(t *testing.T) {
	c := mounted(t, loader.Result{Status: model.Failed("Failed to fetch data")})
	v := c.View()
	assert.Equal(t, table.KindError, v.Kind)
	assert.Equal(t, "Failed to fetch data", v.Message)
	assert.Equal(t, 0, c.Len())
}

func TestComponent_MountOnlyOnce(t *testing.T) {
	l := &stubLoader{res: loader.Result{Records: sixRecords(), Status: model.Ready()}}
	c := table.New("t1", l)
	c.Mount(context.Background())
	c.Mount(context.Background())
	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, 1, l.calls)
}

func TestComponent_UnmountDiscardsLateResult(t *testing.T) {
	gate := make(chan struct{})
	c := table.New("t1", &stubLoader{gate: gate, res: loader.Result{Records: sixRecords(), Status: model.Ready()}})
	c.Mount(context.Background())
	c.Unmount()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx), "unmount must cancel the in-flight load")
	close(gate)

	assert.Equal(t, model.Loading(), c.Status(), "status never changes after unmount")
	assert.Equal(t, 0, c.Len())
}

func TestComponent_WithPageSize(t *testing.T) {
	c := mounted(t, loader.Result{Records: sixRecords(), Status: model.Ready()}, table.WithPageSize(25))
	assert.Equal(t, 25, c.State().PageSize)
	assert.Len(t, c.View().Rows, 6)

	c = table.New("t2", &stubLoader{}, table.WithPageSize(3))
	assert.Equal(t, model.DefaultPageSize, c.State().PageSize)
}

func TestComponent_ConcurrentNavigation(t *testing.T) {
	recs := make([]model.Record, 100)
	c := mounted(t, loader.Result{Records: recs, Status: model.Ready()})

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		i := i
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				switch (i + j) % 3 {
				case 0:
					c.Next()
				case 1:
					c.Prev()
				default:
					_ = c.View()
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	st := c.State()
	assert.GreaterOrEqual(t, st.CurrentPage, 1)
	assert.LessOrEqual(t, st.CurrentPage, c.TotalPages(), fmt.Sprintf("state %+v", st))
}
