// Package config loads runtime settings from environment variables and an
// optional scoring file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/voxctl/voxctl/internal/match"
)

// Config is the process-wide configuration.
type Config struct {
	LogLevel string `env:"VOXCTL_LOG_LEVEL" envDefault:"info"`

	// Semantic service settings. An empty APIKey disables the semantic and
	// direct-generation tiers; the deterministic tier always runs.
	OpenAIBaseURL string `env:"VOXCTL_OPENAI_BASE_URL"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"VOXCTL_OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// History storage. RedisAddr wins when both are set; both empty means
	// history is disabled.
	HistoryPath string `env:"VOXCTL_HISTORY_PATH"`
	RedisAddr   string `env:"VOXCTL_REDIS_ADDR"`

	// ScoringPath points at a YAML file overriding the default resolver
	// scoring tables.
	ScoringPath string `env:"VOXCTL_SCORING_FILE"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name onto a slog level. Unknown names
// fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadScoring reads a scoring file and merges it over the defaults, so a
// file may override only the fields it cares about.
func LoadScoring(path string) (match.Config, error) {
	cfg := match.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return match.Config{}, fmt.Errorf("read scoring file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return match.Config{}, fmt.Errorf("parse scoring file %s: %w", path, err)
	}
	return cfg, nil
}
