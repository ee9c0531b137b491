package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/glyph-rain/audio"
	"github.com/lixenwraith/glyph-rain/config"
	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/parameter"
	"github.com/lixenwraith/glyph-rain/render"
)

// runRain owns the terminal until the user exits
func runRain(cfg *config.Config) error {
	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	session := uuid.NewString()
	log.SetPrefix(fmt.Sprintf("[%s] ", session[:8]))
	log.Printf("session %s starting, fps=%d", session, cfg.FPS)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: ensure the terminal is restored even if the loop crashes
	core.SetCrashRestore(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager(cfg.Audio())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	return newRainLoop(screen, cfg, sound).run()
}

// rainLoop drives simulation, input and rendering on one goroutine
type rainLoop struct {
	screen  tcell.Screen
	cfg     *config.Config
	sound   *audio.SoundManager
	world   *engine.World
	clock   *engine.FrameClock
	camera  *render.Camera
	orch    *render.RenderOrchestrator
	overlay *render.DebugOverlay
}

func newRainLoop(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager) *rainLoop {
	world := newWorld(cfg)

	mode := render.ColorModeTrue
	if cfg.ColorMode == config.ColorMode256 {
		mode = render.ColorMode256
	}

	width, height := screen.Size()
	camera := render.NewCamera(cfg.FPS)
	camera.SetViewport(width, height)

	orch := render.NewRenderOrchestrator(screen, mode)
	orch.Register(render.NewRainRenderer(world, camera), render.PriorityRain)
	overlay := render.NewDebugOverlay(world.Resources.Status)
	orch.Register(overlay, render.PriorityDebug)
	if cfg.Debug {
		overlay.Toggle()
	}

	return &rainLoop{
		screen:  screen,
		cfg:     cfg,
		sound:   sound,
		world:   world,
		clock:   engine.NewFrameClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta),
		camera:  camera,
		orch:    orch,
		overlay: overlay,
	}
}

func (l *rainLoop) run() error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	// Input polling uses a separate goroutine since PollEvent blocks
	core.Go(func() { l.pollEvents(done, events) })

	ticker := time.NewTicker(l.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !l.handleEvent(ev) {
				log.Printf("exit after %d frames", l.world.FrameNumber())
				return nil
			}
		case <-ticker.C:
			l.frame()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done closes
func (l *rainLoop) pollEvents(done <-chan struct{}, events chan<- tcell.Event) {
	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent returns false when the user asked to exit
func (l *rainLoop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		width, height := ev.Size()
		l.camera.SetViewport(width, height)
		l.orch.Resize(width, height)
	case *tcell.EventKey:
		return l.handleKey(ev.Key(), ev.Rune())
	}
	return true
}

// handleKey applies one key press, false means exit
func (l *rainLoop) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'd':
			log.Printf("debug overlay %v", l.overlay.Toggle())
		case ' ':
			log.Printf("paused %v", l.clock.Toggle())
		}
	}
	return true
}

func (l *rainLoop) frame() {
	dt := l.clock.Tick()
	l.world.Update(dt)
	drainEvents(l.world, l.sound, nil)
	l.camera.Update()

	width, height := l.screen.Size()
	l.orch.RenderFrame(render.RenderContext{
		Width:       width,
		Height:      height,
		FrameNumber: l.world.FrameNumber(),
		DeltaTime:   dt,
		IsPaused:    l.clock.IsPaused(),
	}, l.world)
}
