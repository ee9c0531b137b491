package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyph-rain/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glyph-rain.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_MatchesEngineDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, ColorModeTrue, cfg.ColorMode)
	assert.Equal(t, engine.DefaultFieldConfig(), cfg.EngineField())
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeConfig(t, `
fps = 30
seed = 42

[field]
spawn_interval = "200ms"
max_length = 12
rate_min = 2.0
rate_max = 4.0
bounds_min = [-1.0, -2.0, -3.0]
bounds_max = [1.0, 2.0, 0.0]
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FPS)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.Equal(t, 200*time.Millisecond, cfg.Field.SpawnInterval)
	assert.Equal(t, 12, cfg.Field.MaxLength)

	f := cfg.EngineField()
	assert.Equal(t, -1.0, f.MinX)
	assert.Equal(t, 2.0, f.MaxY)
	assert.Equal(t, 2.0, f.RateMin)
	// Untouched keys keep defaults
	assert.Equal(t, 500*time.Millisecond, f.ChurnInterval)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "fps = 30\n")
	t.Setenv("GLYPHRAIN_FPS", "90")
	t.Setenv("GLYPHRAIN_FIELD_MAX_LENGTH", "7")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.FPS)
	assert.Equal(t, 7, cfg.Field.MaxLength)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("GLYPHRAIN_FPS", "90")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--fps", "24", "--spawn-interval", "1s", "--sound"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.FPS)
	assert.Equal(t, time.Second, cfg.Field.SpawnInterval)
	assert.True(t, cfg.Sound)
	assert.True(t, cfg.Audio().Enabled)
}

func TestLoad_UnsetFlagsDoNotMaskEnv(t *testing.T) {
	t.Setenv("GLYPHRAIN_FPS", "90")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.FPS)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fps_zero", func(c *Config) { c.FPS = 0 }},
		{"fps_high", func(c *Config) { c.FPS = 500 }},
		{"volume", func(c *Config) { c.Volume = 1.5 }},
		{"color_mode", func(c *Config) { c.ColorMode = "cga" }},
		{"spawn_interval", func(c *Config) { c.Field.SpawnInterval = 0 }},
		{"churn_interval", func(c *Config) { c.Field.ChurnInterval = -time.Second }},
		{"max_length", func(c *Config) { c.Field.MaxLength = 0 }},
		{"lifetime_inverted", func(c *Config) { c.Field.LifetimeMax = c.Field.LifetimeMin - 1 }},
		{"rate_zero", func(c *Config) { c.Field.RateMin = 0 }},
		{"rate_inverted", func(c *Config) { c.Field.RateMax = c.Field.RateMin - 1 }},
		{"bounds_short", func(c *Config) { c.Field.BoundsMin = []float64{0, 0} }},
		{"bounds_inverted", func(c *Config) { c.Field.BoundsMax = []float64{-100, 8, 1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoad_InvalidFileValue(t *testing.T) {
	path := writeConfig(t, "fps = 0\n")
	_, err := Load(path, nil)
	assert.ErrorIs(t, err, ErrInvalid)
}
