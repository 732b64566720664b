package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/maxviazov/fundtable/internal/source"
)

// defaults are registered with viper so every key can be overridden from APP_* env vars,
// even when no config file mentions it.
var defaults = map[string]any{
	"app.name":                "fundtable",
	"app.version":             "0.1.0",
	"app.env":                 "prod",
	"app.addr":                ":8080",
	"app.shutdown_timeout":    "10s",
	"logger.level":            "",
	"logger.format":           "",
	"logger.output_target":    "",
	"logger.time_format":      "",
	"logger.env":              "",
	"logger.with_caller":      false,
	"logger.stacktrace":       false,
	"source.url":              source.DefaultURL,
	"source.timeout":          "0s",
	"table.default_page_size": 5,
	"table.max_active":        1000,
	"table.locale":            "en-GB",
	"table.currency_symbol":   "£",
}

// Load reads an optional YAML file at path, then .env, then APP_* environment overrides.
// An empty path means defaults plus environment only.
func Load(path string) (*Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load(".env")

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if config.Logger.ServiceName == "" {
		config.Logger.ServiceName = config.App.Name
	}
	if config.Logger.ServiceVersion == "" {
		config.Logger.ServiceVersion = config.App.Version
	}

	if err := validator.New().Struct(&config.App); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	if err := validator.New().Struct(&config.Source); err != nil {
		return nil, fmt.Errorf("invalid source config: %w", err)
	}
	if err := validator.New().Struct(&config.Table); err != nil {
		return nil, fmt.Errorf("invalid table config: %w", err)
	}
	return &config, nil
}
