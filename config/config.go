// Package config loads genetic-algorithm hyperparameters from a TOML
// document, following the load/default/save shape of
// stojg-playlist-sorter's config package.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	lgp "github.com/urmzd/linear-gp-with-rl"
)

// GAConfig is the TOML-serializable shape of lgp.HyperParameters' scalar
// fields. Domain-specific FitnessParams/ProgramParams are assembled by the
// caller from the rest of its own configuration and merged in afterward,
// since they vary per problem and don't have a single TOML shape.
type GAConfig struct {
	PopulationSize   int     `toml:"population_size"`
	Gap              float64 `toml:"gap"`
	MutationPercent  float64 `toml:"mutation_percent"`
	CrossoverPercent float64 `toml:"crossover_percent"`
	NGenerations     int     `toml:"n_generations"`
}

// DefaultConfig returns reasonable defaults for a small run.
func DefaultConfig() GAConfig {
	return GAConfig{
		PopulationSize:   100,
		Gap:              0.5,
		MutationPercent:  0.5,
		CrossoverPercent: 0.5,
		NGenerations:     100,
	}
}

// Path returns the first of ./lgp.toml or ~/.config/lgp/lgp.toml that the
// caller should try to load.
func Path() string {
	if _, err := os.Stat("lgp.toml"); err == nil {
		return "lgp.toml"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lgp.toml"
	}
	return filepath.Join(home, ".config", "lgp", "lgp.toml")
}

// Load reads path and decodes it into a GAConfig. A missing file is not an
// error: it yields DefaultConfig so callers can run with no config present.
func Load(path string) (GAConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg GAConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ToHyperParameters merges a loaded GAConfig with the domain-specific
// fitness and program parameters it can't itself represent, producing a
// ready-to-use lgp.HyperParameters. Go methods cannot carry their own type
// parameters, so this is a free function rather than a GAConfig method.
func ToHyperParameters[F any, G any](c GAConfig, fitness F, program G) lgp.HyperParameters[F, G] {
	return lgp.HyperParameters[F, G]{
		PopulationSize:   c.PopulationSize,
		Gap:              c.Gap,
		MutationPercent:  c.MutationPercent,
		CrossoverPercent: c.CrossoverPercent,
		NGenerations:     c.NGenerations,
		FitnessParams:    fitness,
		ProgramParams:    program,
	}
}

// Save writes cfg to path as TOML, creating parent directories as needed.
func Save(path string, cfg GAConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
