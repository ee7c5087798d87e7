package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that may point at a config file.
const EnvConfigPath = "KNAPSACK_CONFIG"

// BenchConfig controls how the harness runs solvers.
type BenchConfig struct {
	Repetitions int      `yaml:"repetitions" toml:"repetitions"`
	TimeoutSecs int      `yaml:"timeout_secs" toml:"timeout_secs"`
	Solvers     []string `yaml:"solvers" toml:"solvers"`
}

// LimitsConfig bounds the exponential solvers and the DP decision table.
type LimitsConfig struct {
	ExhaustiveItems int `yaml:"exhaustive_items" toml:"exhaustive_items"`
	RecursiveItems  int `yaml:"recursive_items" toml:"recursive_items"`
	TableCells      int `yaml:"table_cells" toml:"table_cells"`
}

// GeneratorConfig holds the defaults for randomly generated problems.
type GeneratorConfig struct {
	Capacity int    `yaml:"capacity" toml:"capacity"`
	Items    int    `yaml:"items" toml:"items"`
	Seed     uint64 `yaml:"seed" toml:"seed"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"`
}

// HistoryConfig bounds how many reports the TUI keeps.
type HistoryConfig struct {
	Limit int `yaml:"limit" toml:"limit"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Bench     BenchConfig     `yaml:"bench" toml:"bench"`
	Limits    LimitsConfig    `yaml:"limits" toml:"limits"`
	Generator GeneratorConfig `yaml:"generator" toml:"generator"`
	Output    OutputConfig    `yaml:"output" toml:"output"`
	History   HistoryConfig   `yaml:"history" toml:"history"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if isTOML(path) {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault tries $KNAPSACK_CONFIG, then ./knapsack.yaml, then ~/.config/knapsack/config.yaml.
// If none exists, it writes defaults to ~/.config/knapsack/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		cfg, err := Load(p)
		return cfg, p, err
	}
	cwdPath := "knapsack.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects settings no command can run with.
func (c *AppConfig) Validate() error {
	if c.Bench.Repetitions < 0 {
		return fmt.Errorf("bench.repetitions must not be negative, got %d", c.Bench.Repetitions)
	}
	if c.Bench.TimeoutSecs < 0 {
		return fmt.Errorf("bench.timeout_secs must not be negative, got %d", c.Bench.TimeoutSecs)
	}
	if c.Generator.Capacity < 0 || c.Generator.Items < 0 {
		return fmt.Errorf("generator capacity and items must not be negative")
	}
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	cfg := &AppConfig{
		Bench:     BenchConfig{Repetitions: 3, Solvers: []string{"exhaustive", "heuristic", "recursive", "dynamic"}},
		Limits:    LimitsConfig{ExhaustiveItems: 22, RecursiveItems: 27, TableCells: 50_000_000},
		Generator: GeneratorConfig{Capacity: 1000, Items: 20},
		Output:    OutputConfig{Format: "table"},
		History:   HistoryConfig{Limit: 50},
	}
	return cfg
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "knapsack", "config.yaml"), nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func applyConfigDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Bench.Repetitions == 0 {
		cfg.Bench.Repetitions = def.Bench.Repetitions
	}
	if len(cfg.Bench.Solvers) == 0 {
		cfg.Bench.Solvers = def.Bench.Solvers
	}
	if cfg.Limits.ExhaustiveItems == 0 {
		cfg.Limits.ExhaustiveItems = def.Limits.ExhaustiveItems
	}
	if cfg.Limits.RecursiveItems == 0 {
		cfg.Limits.RecursiveItems = def.Limits.RecursiveItems
	}
	if cfg.Limits.TableCells == 0 {
		cfg.Limits.TableCells = def.Limits.TableCells
	}
	if cfg.Generator.Capacity == 0 {
		cfg.Generator.Capacity = def.Generator.Capacity
	}
	if cfg.Generator.Items == 0 {
		cfg.Generator.Items = def.Generator.Items
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
	if cfg.History.Limit == 0 {
		cfg.History.Limit = def.History.Limit
	}
}
