package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/linear-gp-with-rl/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, 100, cfg.PopulationSize)
	assert.Equal(t, 0.5, cfg.Gap)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lgp.toml")
	cfg := config.DefaultConfig()
	cfg.PopulationSize = 42

	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadNonExistentConfigReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestToHyperParametersMergesDomainParams(t *testing.T) {
	cfg := config.DefaultConfig()
	hp := config.ToHyperParameters(cfg, "fitness-params", 7)
	assert.Equal(t, cfg.PopulationSize, hp.PopulationSize)
	assert.Equal(t, "fitness-params", hp.FitnessParams)
	assert.Equal(t, 7, hp.ProgramParams)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
