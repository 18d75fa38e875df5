// Package config reads process-level settings from the environment, with
// optional .env file support for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the binaries need to wire up an agent.
type Config struct {
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	Provider      string  `env:"CONNECTONION_PROVIDER"`
	Model         string  `env:"CONNECTONION_MODEL"`
	Temperature   float64 `env:"CONNECTONION_TEMPERATURE" envDefault:"0.7"`
	MaxIterations int     `env:"CONNECTONION_MAX_ITERATIONS" envDefault:"10"`

	HistoryDir string `env:"CONNECTONION_HISTORY_DIR"`

	LogLevel  string `env:"CONNECTONION_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CONNECTONION_LOG_FORMAT" envDefault:"text"`

	TraceEnabled  bool   `env:"CONNECTONION_TRACE" envDefault:"false"`
	TraceExporter string `env:"CONNECTONION_TRACE_EXPORTER" envDefault:"stdout"`
}

// Load reads the given .env files and then the process environment. With no
// arguments it tries ./.env. Missing files are not an error; the
// environment may already carry everything.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// NewLogger builds a slog.Logger on stderr from the configured level and format.
func NewLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
