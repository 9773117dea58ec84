package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherforge/chromabench/config"
)

func TestDefault_MatchesSpecDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.Genetic.PopulationSize != 64 {
		t.Errorf("PopulationSize=%d, want 64", cfg.Genetic.PopulationSize)
	}
	if cfg.Exact.ProgressIntervalSeconds != 5 {
		t.Errorf("ProgressIntervalSeconds=%v, want 5", cfg.Exact.ProgressIntervalSeconds)
	}
}

func TestLoadFile_OverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chromabench.toml")
	contents := "[genetic]\npopulation_size = 128\n\n[exact]\nprogress_interval_seconds = 2.5\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Genetic.PopulationSize != 128 {
		t.Errorf("PopulationSize=%d, want 128", cfg.Genetic.PopulationSize)
	}
	if cfg.Exact.ProgressIntervalSeconds != 2.5 {
		t.Errorf("ProgressIntervalSeconds=%v, want 2.5", cfg.Exact.ProgressIntervalSeconds)
	}
	if cfg.Genetic.MaxGenerations != 500 {
		t.Errorf("MaxGenerations=%d, want unchanged default 500", cfg.Genetic.MaxGenerations)
	}
}

func TestLoadEnv_OverridesProgressInterval(t *testing.T) {
	t.Setenv(config.EnvProgressIntervalKey, "10.5")
	cfg, err := config.LoadEnv(config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exact.ProgressIntervalSeconds != 10.5 {
		t.Errorf("ProgressIntervalSeconds=%v, want 10.5", cfg.Exact.ProgressIntervalSeconds)
	}
}

func TestLoadEnv_RejectsUnparsableInterval(t *testing.T) {
	t.Setenv(config.EnvProgressIntervalKey, "not-a-number")
	if _, err := config.LoadEnv(config.Default()); !errors.Is(err, config.ErrInvalidConfiguration) {
		t.Errorf("got %v, want ErrInvalidConfiguration", err)
	}
}

func TestLoadEnv_RejectsOutOfRangeInterval(t *testing.T) {
	t.Setenv(config.EnvProgressIntervalKey, "1000")
	if _, err := config.LoadEnv(config.Default()); !errors.Is(err, config.ErrInvalidConfiguration) {
		t.Errorf("got %v, want ErrInvalidConfiguration", err)
	}

	t.Setenv(config.EnvProgressIntervalKey, "0.01")
	if _, err := config.LoadEnv(config.Default()); !errors.Is(err, config.ErrInvalidConfiguration) {
		t.Errorf("got %v, want ErrInvalidConfiguration", err)
	}
}

func TestExactProgressInterval_ConvertsSecondsToDuration(t *testing.T) {
	cfg := config.Default()
	if got := cfg.ExactProgressInterval().Seconds(); got != 5 {
		t.Errorf("ExactProgressInterval()=%vs, want 5s", got)
	}
}
