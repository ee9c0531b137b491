package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/glyph-rain/audio"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. GLYPHRAIN_FIELD_MAX_LENGTH
const EnvPrefix = "GLYPHRAIN"

// ErrInvalid marks a configuration that failed validation
var ErrInvalid = errors.New("invalid config")

// Color modes accepted by the renderer
const (
	ColorModeTrue = "truecolor"
	ColorMode256  = "256"
)

// Config is the resolved host configuration
type Config struct {
	FPS       int     `mapstructure:"fps"`
	Seed      uint64  `mapstructure:"seed"` // 0 picks a time-based seed
	Sound     bool    `mapstructure:"sound"`
	Volume    float64 `mapstructure:"volume"`
	Debug     bool    `mapstructure:"debug"`
	ColorMode string  `mapstructure:"color_mode"`

	Field FieldConfig `mapstructure:"field"`
}

// FieldConfig mirrors engine.FieldConfig with file-friendly names
type FieldConfig struct {
	SpawnInterval time.Duration `mapstructure:"spawn_interval"`
	MaxLength     int           `mapstructure:"max_length"`
	LifetimeMin   time.Duration `mapstructure:"lifetime_min"`
	LifetimeMax   time.Duration `mapstructure:"lifetime_max"`
	RateMin       float64       `mapstructure:"rate_min"`
	RateMax       float64       `mapstructure:"rate_max"`
	ChurnInterval time.Duration `mapstructure:"churn_interval"`
	BoundsMin     []float64     `mapstructure:"bounds_min"` // x, y, z
	BoundsMax     []float64     `mapstructure:"bounds_max"`
}

// flagKeys maps CLI flag names to config keys
var flagKeys = map[string]string{
	"fps":            "fps",
	"seed":           "seed",
	"sound":          "sound",
	"volume":         "volume",
	"debug":          "debug",
	"color-mode":     "color_mode",
	"max-length":     "field.max_length",
	"spawn-interval": "field.spawn_interval",
	"churn-interval": "field.churn_interval",
}

func setDefaults(v *viper.Viper) {
	def := engine.DefaultFieldConfig()

	v.SetDefault("fps", 60)
	v.SetDefault("seed", 0)
	v.SetDefault("sound", false)
	v.SetDefault("volume", 0.5)
	v.SetDefault("debug", false)
	v.SetDefault("color_mode", ColorModeTrue)

	v.SetDefault("field.spawn_interval", def.SpawnInterval)
	v.SetDefault("field.max_length", def.MaxLength)
	v.SetDefault("field.lifetime_min", def.LifetimeMin)
	v.SetDefault("field.lifetime_max", def.LifetimeMax)
	v.SetDefault("field.rate_min", def.RateMin)
	v.SetDefault("field.rate_max", def.RateMax)
	v.SetDefault("field.churn_interval", def.ChurnInterval)
	v.SetDefault("field.bounds_min", []float64{def.MinX, def.MinY, def.MinZ})
	v.SetDefault("field.bounds_max", []float64{def.MaxX, def.MaxY, def.MaxZ})
}

// RegisterFlags adds the overridable settings to fs
func RegisterFlags(fs *pflag.FlagSet) {
	def := engine.DefaultFieldConfig()

	fs.Int("fps", 60, "target frames per second (1-120)")
	fs.Uint64("seed", 0, "random seed, 0 for time-based")
	fs.Bool("sound", false, "play a blip when trails are born")
	fs.Float64("volume", 0.5, "master volume 0.0-1.0")
	fs.Bool("debug", false, "write logs and enable the debug overlay")
	fs.String("color-mode", ColorModeTrue, "truecolor or 256")
	fs.Int("max-length", def.MaxLength, "glyphs per trail")
	fs.Duration("spawn-interval", def.SpawnInterval, "average time between trail births")
	fs.Duration("churn-interval", def.ChurnInterval, "average time between glyph re-rolls")
}

// Load resolves defaults, then the optional TOML file at path, then
// GLYPHRAIN_* environment variables, then flags explicitly set in fs
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Load("", nil)
	if err != nil {
		panic(fmt.Sprintf("built-in config invalid: %v", err))
	}
	return cfg
}

// Validate checks ranges; failures wrap ErrInvalid
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("%w: fps %d outside 1..120", ErrInvalid, c.FPS)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside 0..1", ErrInvalid, c.Volume)
	}
	if c.ColorMode != ColorModeTrue && c.ColorMode != ColorMode256 {
		return fmt.Errorf("%w: color_mode %q", ErrInvalid, c.ColorMode)
	}

	f := c.Field
	switch {
	case f.SpawnInterval <= 0:
		return fmt.Errorf("%w: field.spawn_interval must be positive", ErrInvalid)
	case f.ChurnInterval <= 0:
		return fmt.Errorf("%w: field.churn_interval must be positive", ErrInvalid)
	case f.MaxLength <= 0:
		return fmt.Errorf("%w: field.max_length must be positive", ErrInvalid)
	case f.LifetimeMin < 0 || f.LifetimeMax < f.LifetimeMin:
		return fmt.Errorf("%w: field lifetime range [%v, %v)", ErrInvalid, f.LifetimeMin, f.LifetimeMax)
	case f.RateMin <= 0 || f.RateMax < f.RateMin:
		return fmt.Errorf("%w: field rate range [%g, %g)", ErrInvalid, f.RateMin, f.RateMax)
	case len(f.BoundsMin) != 3 || len(f.BoundsMax) != 3:
		return fmt.Errorf("%w: field bounds need x, y, z", ErrInvalid)
	}
	for i, axis := range []string{"x", "y", "z"} {
		if f.BoundsMax[i] < f.BoundsMin[i] {
			return fmt.Errorf("%w: field bounds %s inverted", ErrInvalid, axis)
		}
	}
	return nil
}

// FrameInterval returns the host tick period for FPS
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// EngineField converts to the world resource
func (c *Config) EngineField() engine.FieldConfig {
	f := c.Field
	return engine.FieldConfig{
		SpawnInterval: f.SpawnInterval,
		MinX:          f.BoundsMin[0],
		MaxX:          f.BoundsMax[0],
		MinY:          f.BoundsMin[1],
		MaxY:          f.BoundsMax[1],
		MinZ:          f.BoundsMin[2],
		MaxZ:          f.BoundsMax[2],
		MaxLength:     f.MaxLength,
		LifetimeMin:   f.LifetimeMin,
		LifetimeMax:   f.LifetimeMax,
		RateMin:       f.RateMin,
		RateMax:       f.RateMax,
		ChurnInterval: f.ChurnInterval,
	}
}

// Audio builds the sound settings
func (c *Config) Audio() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Sound
	ac.MasterVolume = c.Volume
	ac.Normalize()
	return ac
}
