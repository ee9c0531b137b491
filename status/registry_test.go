package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_CachedPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("glyph.live")
	b := r.Ints.Get("glyph.live")
	assert.Same(t, a, b)

	a.Add(3)
	assert.Equal(t, int64(3), b.Load())
	assert.True(t, r.Ints.Has("glyph.live"))
	assert.False(t, r.Ints.Has("trail.live"))
}

func TestRegistry_LinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("trail.live").Store(2)
	r.Ints.Get("glyph.live").Store(7)
	r.Floats.Get("frame.dt_ms").Set(16.5)

	assert.Equal(t, []string{
		"glyph.live 7",
		"trail.live 2",
		"frame.dt_ms 16.50",
	}, r.Lines())
	assert.Equal(t, 3, r.TotalCount())
}

func TestFloat_Add(t *testing.T) {
	var f Float
	assert.Equal(t, 1.5, f.Add(1.5))
	assert.Equal(t, 1.0, f.Add(-0.5))
	assert.Equal(t, 1.0, f.Get())
}
