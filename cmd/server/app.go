package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/fundtable/internal/config"
	"github.com/maxviazov/fundtable/internal/loader"
	"github.com/maxviazov/fundtable/internal/logger"
	"github.com/maxviazov/fundtable/internal/repository"
	"github.com/maxviazov/fundtable/internal/service"
	"github.com/maxviazov/fundtable/internal/source"
	"github.com/maxviazov/fundtable/internal/table"
)

// app is the wired dependency graph shared by the subcommands.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	upstream *source.HTTPSource
	tables   service.Service
}

func newApp(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config loading failed: %w", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("logger initialization failed: %w", err)
	}

	formatter, err := table.NewFormatter(cfg.Table.Locale, cfg.Table.CurrencySymbol)
	if err != nil {
		return nil, err
	}

	upstream := source.NewHTTPSource(cfg.Source, appLogger)
	tables := service.NewTableService(
		repository.NewMemory(cfg.Table.MaxActive, appLogger),
		loader.New(upstream, appLogger),
		service.Options{PageSize: cfg.Table.DefaultPageSize, Formatter: formatter},
		appLogger,
	)

	appLogger.Info().
		Str("source", upstream.URL()).
		Int("default_page_size", cfg.Table.DefaultPageSize).
		Msg("config loaded")
	return &app{cfg: cfg, log: appLogger, upstream: upstream, tables: tables}, nil
}
