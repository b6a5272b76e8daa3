package models

// HarnessConfig represents the parsed aoc.toml project manifest.
type HarnessConfig struct {
	NamespacePrefix string      `toml:"namespace_prefix" json:"namespace_prefix"`
	Log             LogConfig   `toml:"log" json:"log"`
	Bench           BenchConfig `toml:"bench" json:"bench"`
}

type LogConfig struct {
	Level  string `toml:"level" json:"level"`   // debug, info, warn, error
	Format string `toml:"format" json:"format"` // text or json
}

// BenchConfig describes how to launch the benchmark subprocess.
type BenchConfig struct {
	Project string   `toml:"project" json:"project"` // relative to the project root
	Command []string `toml:"command" json:"command"` // argv prefix, run in the project root
	Args    []string `toml:"args,omitempty" json:"args,omitempty"`
}
