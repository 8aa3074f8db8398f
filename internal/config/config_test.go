package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/voxctl/voxctl/internal/match"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VOXCTL_LOG_LEVEL", "")
	os.Unsetenv("VOXCTL_LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q", cfg.OpenAIModel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VOXCTL_LOG_LEVEL", "debug")
	t.Setenv("VOXCTL_REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
}

func TestSlogLevelUnknownFallsBackToInfo(t *testing.T) {
	cfg := Config{LogLevel: "verbose"}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel = %v, want info", cfg.SlogLevel())
	}
}

func TestLoadScoringEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadScoring("")
	if err != nil {
		t.Fatalf("LoadScoring: %v", err)
	}
	if cfg != match.DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadScoringPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	data := "accept_threshold: 40\nsemantic:\n  exact: 90\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadScoring(path)
	if err != nil {
		t.Fatalf("LoadScoring: %v", err)
	}
	if cfg.AcceptThreshold != 40 {
		t.Errorf("AcceptThreshold = %d, want 40", cfg.AcceptThreshold)
	}
	if cfg.Semantic.Exact != 90 {
		t.Errorf("Semantic.Exact = %d, want 90", cfg.Semantic.Exact)
	}
	// Untouched fields keep their defaults.
	if cfg.Fallback != match.DefaultConfig().Fallback {
		t.Errorf("Fallback = %+v, want defaults", cfg.Fallback)
	}
}

func TestLoadScoringMissingFile(t *testing.T) {
	if _, err := LoadScoring(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
