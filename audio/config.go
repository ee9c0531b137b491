package audio

import "time"

// AudioConfig holds the synthesis and mixing settings for rain sounds
type AudioConfig struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64 // 0.0-1.0
	DropVolume   float64
	FadeVolume   float64

	// MinInterval rate-limits blips; the field can birth ~20 trails per second
	MinInterval time.Duration
}

// DefaultAudioConfig returns audio disabled with conservative volumes
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		SampleRate:   48000,
		MasterVolume: 0.5,
		DropVolume:   0.4,
		FadeVolume:   0.15,
		MinInterval:  120 * time.Millisecond,
	}
}

// Normalize clamps volumes to [0,1] and replaces invalid rates with defaults
func (c *AudioConfig) Normalize() {
	def := DefaultAudioConfig()
	if c.SampleRate <= 0 {
		c.SampleRate = def.SampleRate
	}
	if c.MinInterval < 0 {
		c.MinInterval = 0
	}
	c.MasterVolume = clampVolume(c.MasterVolume)
	c.DropVolume = clampVolume(c.DropVolume)
	c.FadeVolume = clampVolume(c.FadeVolume)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
