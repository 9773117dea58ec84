package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// LoadFile reads a TOML config file at path into the spec defaults,
// overriding only the fields the file sets.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EnvProgressIntervalKey is the environment variable LoadEnv reads for the
// Exact solver's progress-reporting interval, in seconds.
const EnvProgressIntervalKey = "EXACT_PROGRESS_INTERVAL"

// LoadEnv starts from base and applies any recognised environment
// variable overrides, first loading a .env file from the working
// directory if one is present (a missing .env is not an error). Returns
// ErrInvalidConfiguration when EXACT_PROGRESS_INTERVAL fails to parse as a
// float or falls outside [MinProgressInterval, MaxProgressInterval].
func LoadEnv(base Config) (Config, error) {
	_ = godotenv.Load()

	cfg := base
	if v := os.Getenv(EnvProgressIntervalKey); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfiguration, EnvProgressIntervalKey, v)
		}
		if secs < MinProgressInterval || secs > MaxProgressInterval {
			return Config{}, fmt.Errorf("%w: %s=%v outside [%v, %v]", ErrInvalidConfiguration, EnvProgressIntervalKey, secs, MinProgressInterval, MaxProgressInterval)
		}
		cfg.Exact.ProgressIntervalSeconds = secs
	}
	return cfg, nil
}
