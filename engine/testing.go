package engine

import "github.com/lixenwraith/glyph-rain/vmath"

// NewTestWorld creates a world for tests with the field spawner disabled
// Callers create trails directly and drive randomness through src
func NewTestWorld(src vmath.Source) *World {
	w := NewWorld(src)
	w.Resources.Field.DisableFieldSpawning = true
	return w
}
