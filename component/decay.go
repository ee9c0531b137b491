package component

import "time"

// DecayComponent is a one-shot countdown to the shrink-out animation
type DecayComponent struct {
	Remaining time.Duration

	// Triggered guarantees the shrink transition fires at most once
	Triggered bool
}
