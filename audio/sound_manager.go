package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays rain sounds through a single speaker mixer
// All Play methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	now      func() time.Time
	lastPlay time.Time
}

// NewSoundManager creates a new sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker; disabled configs succeed without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayDrop plays a depth-pitched blip, rate limited by MinInterval
func (sm *SoundManager) PlayDrop(depthScale float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.admit() {
		return false
	}
	sm.add(CreateDropSound(sm.cfg, depthScale))
	return true
}

// PlayFade plays the drain puff, sharing the drop rate limit
func (sm *SoundManager) PlayFade() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.admit() {
		return false
	}
	sm.add(CreateFadeSound(sm.cfg))
	return true
}

// admit applies the rate limit, caller holds mu
func (sm *SoundManager) admit() bool {
	if !sm.initialized {
		return false
	}
	now := sm.now()
	if !sm.lastPlay.IsZero() && now.Sub(sm.lastPlay) < sm.cfg.MinInterval {
		return false
	}
	sm.lastPlay = now
	return true
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
