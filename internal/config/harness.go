package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spachava753/aocharness/internal/models"
)

// ManifestFile marks the project root and holds the harness configuration.
const ManifestFile = "aoc.toml"

// Environment variables that override the manifest.
const (
	EnvRoot            = "AOC_ROOT"
	EnvLogLevel        = "AOC_LOG_LEVEL"
	EnvLogFormat       = "AOC_LOG_FORMAT"
	EnvNamespacePrefix = "AOC_NAMESPACE_PREFIX"
)

// DefaultHarnessConfig returns a HarnessConfig with default values.
func DefaultHarnessConfig() models.HarnessConfig {
	return models.HarnessConfig{
		NamespacePrefix: "Solutions",
		Log: models.LogConfig{
			Level:  "info",
			Format: "text",
		},
		Bench: models.BenchConfig{
			Project: "cmd/aocbench",
			Command: []string{"go", "run", "./cmd/aocbench"},
		},
	}
}

// LoadHarnessConfig loads aoc.toml from the given filesystem. A missing
// manifest yields the defaults.
func LoadHarnessConfig(fsys fs.FS) (models.HarnessConfig, error) {
	cfg := DefaultHarnessConfig()

	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("parsing %s: unknown keys: %s", ManifestFile, strings.Join(keys, ", "))
	}

	applyDefaults(&cfg)
	return cfg, Validate(cfg)
}

// Load reads the manifest under root and applies environment overrides
// from getenv.
func Load(root string, getenv func(string) string) (models.HarnessConfig, error) {
	cfg, err := LoadHarnessConfig(os.DirFS(root))
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg, getenv)
	return cfg, Validate(cfg)
}

// ApplyEnv overrides manifest values with AOC_* environment variables.
func ApplyEnv(cfg *models.HarnessConfig, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvNamespacePrefix)); v != "" {
		cfg.NamespacePrefix = v
	}
}

func applyDefaults(cfg *models.HarnessConfig) {
	def := DefaultHarnessConfig()
	if cfg.NamespacePrefix == "" {
		cfg.NamespacePrefix = def.NamespacePrefix
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if cfg.Bench.Project == "" {
		cfg.Bench.Project = def.Bench.Project
	}
	if len(cfg.Bench.Command) == 0 {
		cfg.Bench.Command = def.Bench.Command
	}
}

// Validate checks enumerated settings.
func Validate(cfg models.HarnessConfig) error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: must be 'debug', 'info', 'warn', or 'error', got %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: must be 'text' or 'json', got %q", cfg.Log.Format)
	}
	return nil
}
