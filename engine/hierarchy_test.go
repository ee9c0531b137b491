package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyph-rain/component"
	"github.com/lixenwraith/glyph-rain/vmath"
)

func TestHierarchy_AttachDetach(t *testing.T) {
	w := NewTestWorld(nil)
	parent := w.CreateEntity()
	a := w.CreateEntity()
	b := w.CreateEntity()

	w.AttachChild(parent, a)
	w.AttachChild(parent, b)
	require.Equal(t, 2, w.ChildCount(parent))
	assert.Equal(t, parent, w.Parent(a))

	w.DetachChild(a)
	assert.Equal(t, 1, w.ChildCount(parent))
	assert.Zero(t, w.Parent(a))
	assert.True(t, w.IsAlive(a), "detach does not destroy")

	// Double detach is a no-op
	w.DetachChild(a)
	assert.Equal(t, 1, w.ChildCount(parent))
}

func TestHierarchy_Reparent(t *testing.T) {
	w := NewTestWorld(nil)
	p1 := w.CreateEntity()
	p2 := w.CreateEntity()
	c := w.CreateEntity()

	w.AttachChild(p1, c)
	w.AttachChild(p2, c)

	assert.Zero(t, w.ChildCount(p1))
	assert.Equal(t, 1, w.ChildCount(p2))
	assert.Equal(t, p2, w.Parent(c))
}

func TestHierarchy_RejectsCycle(t *testing.T) {
	w := NewTestWorld(nil)
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.AttachChild(a, b)
	w.AttachChild(b, a)

	assert.Zero(t, w.Parent(a))
	assert.Zero(t, w.ChildCount(b))
}

func TestHierarchy_DestroyRecursive(t *testing.T) {
	w := NewTestWorld(nil)
	root := w.CreateEntity()
	mid := w.CreateEntity()
	leaf := w.CreateEntity()
	w.Components.Transform.SetComponent(leaf, component.TransformComponent{Scale: vmath.V3FOne})

	w.AttachChild(root, mid)
	w.AttachChild(mid, leaf)

	w.DestroyRecursive(mid)

	assert.True(t, w.IsAlive(root))
	assert.False(t, w.IsAlive(mid))
	assert.False(t, w.IsAlive(leaf))
	assert.Zero(t, w.ChildCount(root))
	assert.False(t, w.Components.Transform.HasEntity(leaf))
	assert.Equal(t, 1, w.EntityCount())
}

func TestHierarchy_StaleReferencesAreNoOps(t *testing.T) {
	w := NewTestWorld(nil)
	parent := w.CreateEntity()
	child := w.CreateEntity()
	w.AttachChild(parent, child)
	w.DestroyRecursive(child)

	assert.NotPanics(t, func() {
		w.DestroyRecursive(child)
		w.DetachChild(child)
		w.AttachChild(parent, child)
		w.DestroyRecursive(0)
	})
	assert.Zero(t, w.ChildCount(parent))
	assert.False(t, w.IsAlive(0))
}

func TestHierarchy_WorldTransform(t *testing.T) {
	w := NewTestWorld(nil)
	parent := w.CreateEntity()
	child := w.CreateEntity()

	w.Components.Transform.SetComponent(parent, component.TransformComponent{
		Position: vmath.Vec3F{X: 10, Y: 5, Z: -2},
		Scale:    vmath.Vec3F{X: 2, Y: 2, Z: 1},
	})
	w.Components.Transform.SetComponent(child, component.TransformComponent{
		Position: vmath.Vec3F{X: 0, Y: -1, Z: 0},
		Scale:    vmath.Vec3F{X: 0.5, Y: 0.5, Z: 1},
	})
	w.AttachChild(parent, child)

	wt := w.WorldTransform(child)
	assert.InDelta(t, 10.0, wt.Position.X, 1e-9)
	assert.InDelta(t, 3.0, wt.Position.Y, 1e-9)
	assert.InDelta(t, -2.0, wt.Position.Z, 1e-9)
	assert.InDelta(t, 1.0, wt.Scale.X, 1e-9)
	assert.InDelta(t, 1.0, wt.Scale.Y, 1e-9)

	// Missing transform is identity
	orphan := w.CreateEntity()
	assert.Equal(t, vmath.V3FOne, w.WorldTransform(orphan).Scale)
}
