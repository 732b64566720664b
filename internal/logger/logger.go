package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// DebugLogPath is where dev+debug logs are mirrored in addition to the console.
const DebugLogPath = "logs/debug.log"

type LoggerConfig struct {
	Level          string                 `mapstructure:"level" json:"level,omitempty" validate:"oneof=trace debug info warn error"`
	Format         string                 `mapstructure:"format" json:"format,omitempty" validate:"oneof=json console"`
	OutputTarget   string                 `mapstructure:"output_target" json:"outputTarget,omitempty" validate:"oneof=stdout stderr"`
	TimeField      string                 `mapstructure:"time_field" json:"timeField,omitempty"`
	TimeFormat     string                 `mapstructure:"time_format" json:"timeFormat,omitempty" validate:"oneof=rfc3339 rfc3339nano unix unix_ms"`
	ServiceName    string                 `mapstructure:"service_name" json:"serviceName,omitempty"`
	ServiceVersion string                 `mapstructure:"service_version" json:"serviceVersion,omitempty"`
	Env            string                 `mapstructure:"env" json:"env,omitempty" validate:"oneof=dev staging prod"`
	WithCaller     bool                   `mapstructure:"with_caller" json:"withCaller,omitempty"`
	Stacktrace     bool                   `mapstructure:"stacktrace" json:"stacktrace,omitempty"`
	Fields         map[string]interface{} `mapstructure:"fields" json:"fields,omitempty"`
}

func New(logg *LoggerConfig) (logger zerolog.Logger, err error) {
	logg.setDefaults()

	v := validator.New()
	if err = v.Struct(logg); err != nil {
		return logger, fmt.Errorf("logger config validation error: %w", err)
	}

	zerolog.TimestampFieldName = logg.TimeField
	zerolog.TimeFieldFormat = zerologTimeFormat(logg.TimeFormat)

	logger = zerolog.New(logg.writer()).
		With().
		Timestamp().
		Str("service", logg.ServiceName).
		Str("version", logg.ServiceVersion).
		Str("env", logg.Env).
		Logger()

	// add optional extras in a clean linear flow
	if logg.WithCaller {
		logger = logger.With().Caller().Logger()
	}
	if logg.Stacktrace {
		logger = logger.With().Stack().Logger()
	}
	if len(logg.Fields) > 0 {
		logger = logger.With().Fields(logg.Fields).Logger()
	}

	level, err := zerolog.ParseLevel(logg.Level)
	if err != nil {
		return logger, err
	}
	zerolog.SetGlobalLevel(level)

	return logger, nil
}

// writer picks the sink: JSON in prod-like envs, console for humans in dev,
// plus a file mirror when debugging locally. File problems never fail startup.
func (c *LoggerConfig) writer() io.Writer {
	var out io.Writer = os.Stdout
	if c.OutputTarget == "stderr" {
		out = os.Stderr
	}
	if c.Format == "json" {
		return out
	}

	console := zerolog.ConsoleWriter{Out: out, TimeFormat: zerologTimeFormat(c.TimeFormat)}
	if c.Env != "dev" || c.Level != "debug" {
		return console
	}
	if err := os.MkdirAll(filepath.Dir(DebugLogPath), 0o755); err != nil {
		return console
	}
	file, err := os.OpenFile(DebugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return console
	}
	return zerolog.MultiLevelWriter(console, file)
}

// zerologTimeFormat maps config names onto zerolog's format constants.
func zerologTimeFormat(name string) string {
	switch name {
	case "rfc3339":
		return "2006-01-02T15:04:05Z07:00"
	case "unix":
		return zerolog.TimeFormatUnix
	case "unix_ms":
		return zerolog.TimeFormatUnixMs
	default:
		return "2006-01-02T15:04:05.999999999Z07:00"
	}
}

func (c *LoggerConfig) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}

	// level defaults depend on environment
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}

	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}

	if c.OutputTarget == "" {
		c.OutputTarget = "stdout"
	}

	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "rfc3339nano"
	}

	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
	if !c.Stacktrace && c.Env != "dev" {
		c.Stacktrace = true
	}

	if c.ServiceName == "" {
		c.ServiceName = "fundtable"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.0.1"
	}

	if c.Fields == nil {
		c.Fields = make(map[string]interface{})
	}
}
