package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.DefaultK)
	assert.Equal(t, 2, cfg.KMin)
	assert.Equal(t, 10, cfg.KMax)
	assert.Equal(t, int64(42), cfg.DefaultSeed)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().DefaultK, cfg.DefaultK)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().DefaultSeed, cfg.DefaultSeed)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "default_k: 5\ndefault_seed: 7\nchart_width: 80\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DefaultK)
	assert.Equal(t, int64(7), cfg.DefaultSeed)
	assert.Equal(t, 80, cfg.ChartWidth)
	// Untouched keys keep their defaults.
	assert.Equal(t, 10, cfg.KMax)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_k: 5\n"), 0o600))
	t.Setenv("SEGDASH_DEFAULT_K", "4")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.DefaultK)
}

func TestLoad_ValidationFailure(t *testing.T) {
	t.Setenv("SEGDASH_K_MIN", "1")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"k_min below 2", func(c *Config) { c.KMin = 1 }, true},
		{"k_max below k_min", func(c *Config) { c.KMax = 1 }, true},
		{"default_k outside bounds", func(c *Config) { c.DefaultK = 11 }, true},
		{"non-positive iterations", func(c *Config) { c.MaxIterations = 0 }, true},
		{"chart too small", func(c *Config) { c.ChartWidth = 5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
