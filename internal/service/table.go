package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/fundtable/internal/repository"
	"github.com/maxviazov/fundtable/internal/table"
)

// Options are the per-table defaults applied on mount.
type Options struct {
	PageSize  int
	Formatter *table.Formatter
}

// tableService mounts components into the repository and forwards user actions to them.
type tableService struct {
	repo   repository.TableRepository
	loader table.Loader
	opts   Options
	log    zerolog.Logger

	// root outlives individual requests; Close cancels it and with it every in-flight load.
	root   context.Context
	cancel context.CancelFunc
}

// Service is a TableService that owns background loads and must be closed.
type Service interface {
	TableService
	Close()
}

func NewTableService(repo repository.TableRepository, ld table.Loader, opts Options, logger zerolog.Logger) Service {
	l := logger.With().Str("module", "service").Str("component", "table").Logger()
	root, cancel := context.WithCancel(context.Background())
	return &tableService{repo: repo, loader: ld, opts: opts, log: l, root: root, cancel: cancel}
}

func (s *tableService) Mount(ctx context.Context) (table.View, error) {
	id := repository.NewID()
	opts := []table.Option{table.WithLogger(s.log)}
	if s.opts.PageSize != 0 {
		opts = append(opts, table.WithPageSize(s.opts.PageSize))
	}
	if s.opts.Formatter != nil {
		opts = append(opts, table.WithFormatter(s.opts.Formatter))
	}
	c := table.New(id, s.loader, opts...)

	evicted, err := s.repo.Add(ctx, c)
	if err != nil {
		s.log.Error().Err(err).Msg("mount table failed")
		return table.View{}, err
	}
	if evicted != nil {
		evicted.Unmount()
		s.log.Info().Str("table_id", evicted.ID()).Msg("idle table evicted")
	}
	// The load belongs to the table, not to the request that mounted it.
	c.Mount(s.root)
	s.log.Info().Str("table_id", id).Int("active", s.repo.Count(ctx)).Msg("table mounted")
	return c.View(), nil
}

func (s *tableService) get(ctx context.Context, id string) (*table.Component, error) {
	if err := newInvalidInput(validateID(id)); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *tableService) View(ctx context.Context, id string) (table.View, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return table.View{}, err
	}
	return c.View(), nil
}

func (s *tableService) Await(ctx context.Context, id string) (table.View, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return table.View{}, err
	}
	start := time.Now()
	if err := c.Wait(ctx); err != nil {
		return table.View{}, err
	}
	s.log.Debug().Str("table_id", id).Dur("waited", time.Since(start)).Msg("table load awaited")
	return c.View(), nil
}

func (s *tableService) GoToPage(ctx context.Context, id string, page int) (table.View, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return table.View{}, err
	}
	if !c.GoToPage(page) {
		s.log.Debug().Str("table_id", id).Int("page", page).Int("total_pages", c.TotalPages()).Msg("page out of range, ignored")
	}
	return c.View(), nil
}

func (s *tableService) Next(ctx context.Context, id string) (table.View, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return table.View{}, err
	}
	c.Next()
	return c.View(), nil
}

func (s *tableService) Prev(ctx context.Context, id string) (table.View, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return table.View{}, err
	}
	c.Prev()
	return c.View(), nil
}

func (s *tableService) SetPageSize(ctx context.Context, id string, size int) (table.View, error) {
	ferrs := append(validateID(id), validatePageSize(size)...)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("table_id", id).Interface("field_errors", ferrs).Msg("page size validation failed")
		return table.View{}, err
	}
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return table.View{}, err
	}
	if err := c.SetPageSize(size); err != nil {
		return table.View{}, newInvalidInput([]FieldError{{Field: "page_size", Message: err.Error()}})
	}
	return c.View(), nil
}

func (s *tableService) Unmount(ctx context.Context, id string) error {
	if err := newInvalidInput(validateID(id)); err != nil {
		return err
	}
	c, err := s.repo.Remove(ctx, id)
	if err != nil {
		return err
	}
	c.Unmount()
	s.log.Info().Str("table_id", id).Msg("table unmounted")
	return nil
}

// Close unmounts every table and cancels their loads.
func (s *tableService) Close() {
	s.cancel()
	tables := s.repo.Drain(context.Background())
	for _, c := range tables {
		c.Unmount()
	}
	s.log.Info().Int("unmounted", len(tables)).Msg("table service closed")
}
