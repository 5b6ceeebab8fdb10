package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Thrust.K)
	assert.Equal(t, 0.1, cfg.Thrust.BoostOffset)
	assert.Equal(t, 0.1, cfg.Thrust.BoostDivisorMin)
	assert.Equal(t, 10.0, cfg.Thrust.TurnTorque)
	assert.Equal(t, 100*time.Millisecond, cfg.Input.RepeatInterval)
	assert.Equal(t, 550*time.Millisecond, cfg.Input.HoldInitial)
	assert.Equal(t, 120*time.Millisecond, cfg.Input.HoldRepeat)
	assert.Equal(t, 1000, cfg.World.FieldCount)
	assert.Equal(t, 2500.0, cfg.World.FieldHalfExtent)
	assert.Equal(t, time.Second, cfg.Collector.Interval)
	assert.Equal(t, -5.0, cfg.Physics.Gravity)
	assert.Equal(t, 16*time.Millisecond, cfg.Physics.Tick)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 10, cfg.Audio.PoolSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Empty(t, cfg.Ledger.Path)
	assert.Equal(t, 4.0, cfg.Render.Scale)
}

func TestLoad_WithTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skyfarer.toml")
	data := `
[thrust]
k = 5
boostDivisorMin = 0.05

[input]
repeatInterval = "50ms"

[world]
seed = 42
fieldCount = 10
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.Thrust.K)
	assert.Equal(t, 0.05, cfg.Thrust.BoostDivisorMin)
	assert.Equal(t, 50*time.Millisecond, cfg.Input.RepeatInterval)
	assert.Equal(t, uint64(42), cfg.World.Seed)
	assert.Equal(t, 10, cfg.World.FieldCount)
	// Untouched keys keep defaults
	assert.Equal(t, 0.1, cfg.Thrust.BoostOffset)
}

func TestLoad_WithYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skyfarer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audio:\n  enabled: false\n  poolSize: 0\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0, cfg.Audio.PoolSize)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SKYFARER_THRUST_K", "7")
	t.Setenv("SKYFARER_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.Thrust.K)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero k", func(c *Config) { c.Thrust.K = 0 }},
		{"negative divisor floor", func(c *Config) { c.Thrust.BoostDivisorMin = -1 }},
		{"zero repeat", func(c *Config) { c.Input.RepeatInterval = 0 }},
		{"negative field", func(c *Config) { c.World.FieldCount = -1 }},
		{"zero tick", func(c *Config) { c.Physics.Tick = 0 }},
		{"negative pool", func(c *Config) { c.Audio.PoolSize = -1 }},
		{"zero scale", func(c *Config) { c.Render.Scale = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalid), "err = %v", err)
		})
	}
}

func TestParams(t *testing.T) {
	cfg := Default()
	cfg.Thrust.K = 5
	cfg.Physics.Gravity = -9
	cfg.Collector.Magnitude = 3

	assert.Equal(t, 5.0, cfg.ThrustParams().K)
	assert.Equal(t, -9.0, cfg.SandboxParams().Gravity)
	assert.Equal(t, 3.0, cfg.SpawnParams().CollectorMagnitude)
	assert.Equal(t, 500.0, cfg.SpawnParams().ShapeHeightMax)
}

func TestDefaultMatchesLoad(t *testing.T) {
	var cfg *Config
	require.NotPanics(t, func() { cfg = Default() })

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, loaded, cfg)
	assert.Equal(t, 10.0, cfg.Thrust.K)
	assert.Equal(t, 1000, cfg.World.FieldCount)
}
