package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/glyph-rain/config"
	"github.com/lixenwraith/glyph-rain/event"
)

func newSimulateCmd(configPath *string) *cobra.Command {
	var (
		ticks int
		dt    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the rain headless and print lifecycle metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return fmt.Errorf("ticks must be non-negative, got %d", ticks)
			}
			cfg, err := config.Load(*configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logFile := setupLogging(cfg.Debug)
			if logFile != nil {
				defer logFile.Close()
			}

			world := newWorld(cfg)
			counts := make(eventCounts)
			for i := 0; i < ticks; i++ {
				world.Update(dt)
				drainEvents(world, nil, counts)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "simulated %d ticks of %v (%v)\n", ticks, dt, world.Resources.Time.GameTime)
			for _, t := range []event.EventType{
				event.EventTrailSpawned,
				event.EventTrailDestroyed,
				event.EventGlyphSpawned,
				event.EventGlyphDestroyed,
			} {
				fmt.Fprintf(out, "events %s: %d\n", t, counts[t])
			}
			fmt.Fprintln(out, world.Resources.Status.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks to run")
	cmd.Flags().DurationVar(&dt, "dt", 16*time.Millisecond, "simulated time per tick")
	return cmd
}
