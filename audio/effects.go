package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveNoise
)

// Drop blip shape
const (
	DropBaseFreq     = 660.0
	DropDuration     = 90 * time.Millisecond
	DropAttack       = 4 * time.Millisecond
	DropRelease      = 70 * time.Millisecond
	FadeDuration     = 60 * time.Millisecond
	FadeAttack       = 10 * time.Millisecond
	FadeRelease      = 45 * time.Millisecond
	dropSweepOctaves = 0.5
)

// oscillator generates raw audio waves with an optional exponential pitch sweep
type oscillator struct {
	freq     float64
	sweep    float64 // Octaves over the full duration, negative falls
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newSweep(freq, 0, duration, wave, rate)
}

func newSweep(freq, octaves float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		sweep:    octaves,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.sweep != 0 && o.duration > 0 {
			freq *= math.Exp2(o.sweep * float64(o.position) / float64(o.duration))
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a log-scale volume; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// DropFrequency maps a trail's depth scale to pitch; near trails sound lower
func DropFrequency(depthScale float64) float64 {
	s := math.Min(math.Max(depthScale, 0.25), 4)
	return DropBaseFreq / math.Sqrt(s)
}

// CreateDropSound generates a falling sine blip for a trail birth
func CreateDropSound(cfg *AudioConfig, depthScale float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := newSweep(DropFrequency(depthScale), -dropSweepOctaves, DropDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, DropDuration, DropAttack, DropRelease, rate)

	return newVolume(shaped, cfg.DropVolume*cfg.MasterVolume)
}

// CreateFadeSound generates a soft noise puff for a trail draining away
func CreateFadeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, FadeDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, FadeDuration, FadeAttack, FadeRelease, rate)

	return newVolume(shaped, cfg.FadeVolume*cfg.MasterVolume)
}
