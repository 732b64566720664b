package config

import (
	"time"

	"github.com/maxviazov/fundtable/internal/logger"
	"github.com/maxviazov/fundtable/internal/source"
)

type Config struct {
	App    AppConfig           `mapstructure:"app"`
	Logger logger.LoggerConfig `mapstructure:"logger"`
	Source source.Config       `mapstructure:"source"`
	Table  TableConfig         `mapstructure:"table"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Env             string        `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Addr            string        `mapstructure:"addr" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// TableConfig holds per-table defaults and the registry bound.
type TableConfig struct {
	DefaultPageSize int    `mapstructure:"default_page_size" validate:"oneof=5 10 15 25"`
	MaxActive       int    `mapstructure:"max_active" validate:"gte=0"`
	Locale          string `mapstructure:"locale" validate:"required,bcp47_language_tag"`
	CurrencySymbol  string `mapstructure:"currency_symbol" validate:"required"`
}
