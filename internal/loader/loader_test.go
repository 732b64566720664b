package loader_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/fundtable/internal/loader"
	"github.com/maxviazov/fundtable/internal/model"
	"github.com/maxviazov/fundtable/internal/source"
)

func TestLoad(t *testing.T) {
	one := []model.Record{{PercentageFunded: decimal.NewFromInt(80), AmountPledged: decimal.NewFromInt(5000)}}

	cases := []struct {
		name        string
		fetch       loader.Func
		wantStatus  model.LoadStatus
		wantRecords int
	}{
		{
			name:        "ok",
			fetch:       func(context.Context) ([]model.Record, error) { return one, nil },
			wantStatus:  model.Ready(),
			wantRecords: 1,
		},
		{
			name:       "empty",
			fetch:      func(context.Context) ([]model.Record, error) { return []model.Record{}, nil },
			wantStatus: model.Ready(),
		},
		{
			name: "non-ok status collapses",
			fetch: func(context.Context) ([]model.Record, error) {
				return nil, fmt.Errorf("%w: status 503", source.ErrFetchFailed)
			},
			wantStatus: model.Failed("Failed to fetch data"),
		},
		{
			name: "other errors are verbatim",
			fetch: func(context.Context) ([]model.Record, error) {
				return nil, errors.New("unexpected end of JSON input")
			},
			wantStatus: model.Failed("unexpected end of JSON input"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			fetch := loader.Func(func(ctx context.Context) ([]model.Record, error) {
				calls++
				return tc.fetch(ctx)
			})
			l := loader.New(fetch, zerolog.New(io.Discard))

			res := l.Load(context.Background())
			assert.Equal(t, tc.wantStatus, res.Status)
			assert.Len(t, res.Records, tc.wantRecords)
			assert.True(t, res.Status.IsTerminal())
			assert.Equal(t, 1, calls, "no retries")
		})
	}
}
