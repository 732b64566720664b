// Package loader runs the single fetch of a table and turns its outcome into a LoadStatus.
package loader

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/fundtable/internal/model"
	"github.com/maxviazov/fundtable/internal/source"
)

// Result is the terminal outcome of one load.
// Records is only set when Status is Ready.
type Result struct {
	Records []model.Record
	Status  model.LoadStatus
}

// Loader fetches records once per call and never retries.
type Loader struct {
	src source.Source
	log zerolog.Logger
}

func New(src source.Source, logger zerolog.Logger) *Loader {
	return &Loader{
		src: src,
		log: logger.With().Str("module", "loader").Logger(),
	}
}

// Load performs the fetch and always returns a terminal Result.
// A non-ok upstream status collapses to ErrFetchFailed's text; any other error is surfaced verbatim.
func (l *Loader) Load(ctx context.Context) Result {
	start := time.Now()
	records, err := l.src.Fetch(ctx)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, source.ErrFetchFailed) {
			msg = source.ErrFetchFailed.Error()
		}
		l.log.Warn().Err(err).Dur("took", time.Since(start)).Msg("load failed")
		return Result{Status: model.Failed(msg)}
	}
	l.log.Info().Int("records", len(records)).Dur("took", time.Since(start)).Msg("load finished")
	return Result{Records: records, Status: model.Ready()}
}

// Func adapts a plain function to source.Source.
type Func func(ctx context.Context) ([]model.Record, error)

func (f Func) Fetch(ctx context.Context) ([]model.Record, error) { return f(ctx) }
