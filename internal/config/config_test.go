package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spachava753/aocharness/internal/config"
	"github.com/spachava753/aocharness/internal/models"
)

func TestLoadHarnessConfig(t *testing.T) {
	manifest := `namespace_prefix = "Puzzles"

[log]
level = "debug"
format = "json"

[bench]
project = "tools/bench"
command = ["go", "run", "./tools/bench"]
args = ["--count", "5"]
`

	fsys := fstest.MapFS{
		"aoc.toml": &fstest.MapFile{Data: []byte(manifest)},
	}

	cfg, err := config.LoadHarnessConfig(fsys)
	if err != nil {
		t.Fatalf("LoadHarnessConfig failed: %v", err)
	}

	if cfg.NamespacePrefix != "Puzzles" {
		t.Errorf("expected namespace prefix Puzzles, got %s", cfg.NamespacePrefix)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("expected log format json, got %s", cfg.Log.Format)
	}

	if cfg.Bench.Project != "tools/bench" {
		t.Errorf("expected bench project tools/bench, got %s", cfg.Bench.Project)
	}

	if len(cfg.Bench.Command) != 3 || cfg.Bench.Command[2] != "./tools/bench" {
		t.Errorf("unexpected bench command %v", cfg.Bench.Command)
	}

	if len(cfg.Bench.Args) != 2 {
		t.Errorf("expected 2 bench args, got %d", len(cfg.Bench.Args))
	}
}

func TestLoadHarnessConfig_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		"aoc.toml": &fstest.MapFile{Data: []byte("# empty manifest\n")},
	}

	cfg, err := config.LoadHarnessConfig(fsys)
	if err != nil {
		t.Fatalf("LoadHarnessConfig failed: %v", err)
	}

	def := config.DefaultHarnessConfig()
	if cfg.NamespacePrefix != def.NamespacePrefix {
		t.Errorf("expected default prefix %s, got %s", def.NamespacePrefix, cfg.NamespacePrefix)
	}
	if cfg.Bench.Project != "cmd/aocbench" {
		t.Errorf("expected default bench project cmd/aocbench, got %s", cfg.Bench.Project)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected default log config %+v", cfg.Log)
	}
}

func TestLoadHarnessConfig_Missing(t *testing.T) {
	cfg, err := config.LoadHarnessConfig(fstest.MapFS{})
	if err != nil {
		t.Fatalf("missing manifest should not be an error: %v", err)
	}
	if cfg.NamespacePrefix != "Solutions" {
		t.Errorf("expected default prefix Solutions, got %s", cfg.NamespacePrefix)
	}
}

func TestLoadHarnessConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"syntax error", "namespace_prefix = \n"},
		{"unknown key", "colour = true\n"},
		{"bad log level", "[log]\nlevel = \"loud\"\n"},
		{"bad log format", "[log]\nformat = \"xml\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"aoc.toml": &fstest.MapFile{Data: []byte(tt.manifest)},
			}
			if _, err := config.LoadHarnessConfig(fsys); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := config.DefaultHarnessConfig()
	env := map[string]string{
		config.EnvLogLevel:        " DEBUG ",
		config.EnvNamespacePrefix: "Puzzles",
	}

	config.ApplyEnv(&cfg, func(k string) string { return env[k] })

	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("expected log format to stay text, got %s", cfg.Log.Format)
	}
	if cfg.NamespacePrefix != "Puzzles" {
		t.Errorf("expected prefix Puzzles, got %s", cfg.NamespacePrefix)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, config.ManifestFile), []byte(""), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	deep := filepath.Join(root, "bin", "debug", "net", "x")
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatalf("creating dirs: %v", err)
	}

	got, err := config.FindProjectRoot(deep)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}

	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("expected root %s, got %s", want, got)
	}
}

func TestFindProjectRoot_HopLimit(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, config.ManifestFile), []byte(""), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	// 11 levels below the manifest is one hop too far.
	deep := root
	for i := 0; i <= config.MaxRootHops; i++ {
		deep = filepath.Join(deep, "d")
	}
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatalf("creating dirs: %v", err)
	}

	_, err := config.FindProjectRoot(deep)
	if err == nil {
		t.Fatal("expected error beyond the hop limit")
	}
	if models.TypeOf(err) != models.ErrProjectRootNotFound {
		t.Errorf("expected %s, got %s", models.ErrProjectRootNotFound, models.TypeOf(err))
	}

	// Exactly at the limit still works.
	if _, err := config.FindProjectRoot(filepath.Dir(deep)); err != nil {
		t.Errorf("expected root at %d hops: %v", config.MaxRootHops, err)
	}
}

func TestFindProjectRootFrom(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, config.ManifestFile), []byte(""), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	// The first start has no manifest above it, the second does.
	got, err := config.FindProjectRootFrom("", t.TempDir(), root)
	if err != nil {
		t.Fatalf("FindProjectRootFrom: %v", err)
	}
	if got != root {
		t.Errorf("expected %s, got %s", root, got)
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	manifest := "[log]\nlevel = \"warn\"\n"
	if err := os.WriteFile(filepath.Join(root, config.ManifestFile), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	env := map[string]string{config.EnvLogFormat: "json"}
	cfg, err := config.Load(root, func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}

	env[config.EnvLogLevel] = "verbose"
	if _, err := config.Load(root, func(k string) string { return env[k] }); err == nil {
		t.Error("expected invalid level from environment to fail validation")
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		cfg      models.LogConfig
		debug    bool
		wantJSON bool
	}{
		{models.LogConfig{Level: "debug", Format: "text"}, true, false},
		{models.LogConfig{Level: "info", Format: "json"}, false, true},
		{models.LogConfig{Level: "error", Format: "text"}, false, false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := config.NewLogger(tt.cfg, &buf)

		if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.debug {
			t.Errorf("%+v: debug enabled = %v, want %v", tt.cfg, got, tt.debug)
		}

		logger.Error("boom", "k", "v")
		if isJSON := strings.HasPrefix(buf.String(), "{"); isJSON != tt.wantJSON {
			t.Errorf("%+v: json output = %v, want %v: %s", tt.cfg, isJSON, tt.wantJSON, buf.String())
		}
	}
}

func TestLocateProjectRoot_Override(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, config.ManifestFile), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "cmd", "aoc")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := config.LocateProjectRoot(sub)
	if err != nil {
		t.Fatalf("LocateProjectRoot failed: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	if _, err := config.LocateProjectRoot(t.TempDir()); models.TypeOf(err) != models.ErrProjectRootNotFound {
		t.Errorf("expected %s, got %v", models.ErrProjectRootNotFound, err)
	}
}
