// Package config loads the diyai configuration: defaults, then an optional
// JSON file, then environment overrides, validated before use.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config is the full runtime configuration.
type Config struct {
	// WordNetDir overrides the WordNet data directory search.
	WordNetDir string `json:"wordnet_dir" validate:"omitempty,dir"`
	// CachePath enables the SQLite sense cache when non-empty.
	CachePath string `json:"cache_path"`
	// PhraseFile points at a JSON or YAML phrase override file.
	PhraseFile string `json:"phrase_file" validate:"omitempty,file"`
	// LogDir receives the rotated debug logs.
	LogDir string `json:"log_dir"`
	// CacheTTLMinutes bounds the in-process lookup memoization.
	CacheTTLMinutes int `json:"cache_ttl_minutes" validate:"gte=0,lte=1440"`
	// Debug enables file logging.
	Debug bool `json:"debug"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		LogDir:          filepath.Join(configDir(), "logs"),
		CacheTTLMinutes: 30,
	}
}

// configDir picks ./.diyai when present, else ~/.diyai.
func configDir() string {
	if info, err := os.Stat(".diyai"); err == nil && info.IsDir() {
		return ".diyai"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".diyai"
	}
	return filepath.Join(home, ".diyai")
}

// Load builds the configuration: defaults, the JSON file at path (or the
// default location when path is empty; a missing default file is fine),
// then environment variables, then validation.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = filepath.Join(configDir(), "config.json")
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays DIYAI_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DIYAI_WORDNET_DIR"); v != "" {
		cfg.WordNetDir = v
	}
	if v := os.Getenv("DIYAI_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("DIYAI_PHRASE_FILE"); v != "" {
		cfg.PhraseFile = v
	}
	if v := os.Getenv("DIYAI_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("DIYAI_CACHE_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CacheTTLMinutes = n
		}
	}
	if v := os.Getenv("DIYAI_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
