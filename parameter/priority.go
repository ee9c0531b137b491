package parameter

// System Execution Priorities (lower runs first)
// Order is load-bearing: tweens advance, finished work is destroyed, timers tick, then new entities spawn
const (
	PriorityAnimator = 10 // Advance all tweens, evaluate completion
	PriorityDespawn  = 20 // Destroy finished glyphs and drained empty trails
	PriorityGlyph    = 30 // Character churn, decay countdown, shrink start
	PriorityTrail    = 40 // Drift, spawn timers, glyph emission
	PriorityField    = 50 // Trail birth, runs last so new trails never age this tick
)
