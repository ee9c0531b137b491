package engine

import (
	"slices"

	"github.com/lixenwraith/glyph-rain/component"
	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/parameter"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// AttachChild makes child owned by parent, moving it from any previous parent
// No-op if either entity is dead or the edge would form a cycle
func (w *World) AttachChild(parent, child core.Entity) {
	if parent == child || !w.IsAlive(parent) || !w.IsAlive(child) {
		return
	}
	for p := parent; p != 0; {
		if p == child {
			return
		}
		pc, ok := w.Components.Parent.GetComponent(p)
		if !ok {
			break
		}
		p = pc.Parent
	}

	w.DetachChild(child)

	w.Components.Parent.SetComponent(child, component.ParentComponent{Parent: parent})
	children, _ := w.Components.Children.GetComponent(parent)
	children.Entities = append(children.Entities, child)
	w.Components.Children.SetComponent(parent, children)
}

// DetachChild removes child from its parent's children list
// No-op for stale or orphan entities
func (w *World) DetachChild(child core.Entity) {
	pc, ok := w.Components.Parent.GetComponent(child)
	if !ok {
		return
	}
	w.Components.Parent.RemoveEntity(child)

	children, ok := w.Components.Children.GetComponent(pc.Parent)
	if !ok {
		return
	}
	if i := slices.Index(children.Entities, child); i >= 0 {
		children.Entities = slices.Delete(children.Entities, i, i+1)
	}
	if len(children.Entities) == 0 {
		w.Components.Children.RemoveEntity(pc.Parent)
		return
	}
	w.Components.Children.SetComponent(pc.Parent, children)
}

// DestroyRecursive destroys e and everything it owns
// Stale entities are ignored
func (w *World) DestroyRecursive(e core.Entity) {
	if !w.IsAlive(e) {
		return
	}
	w.destroySubtree(e, 0)
}

func (w *World) destroySubtree(e core.Entity, depth int) {
	if depth < parameter.HierarchyMaxDepth {
		if children, ok := w.Components.Children.GetComponent(e); ok {
			// Copy, children detach themselves from this slice
			for _, child := range slices.Clone(children.Entities) {
				w.destroySubtree(child, depth+1)
			}
		}
	}
	w.DetachChild(e)
	w.destroyEntity(e)
}

// Children returns a snapshot of e's owned entities
func (w *World) Children(e core.Entity) []core.Entity {
	children, ok := w.Components.Children.GetComponent(e)
	if !ok {
		return nil
	}
	return slices.Clone(children.Entities)
}

// ChildCount returns the number of entities owned by e
func (w *World) ChildCount(e core.Entity) int {
	children, ok := w.Components.Children.GetComponent(e)
	if !ok {
		return 0
	}
	return len(children.Entities)
}

// Parent returns e's owner, 0 when e has none
func (w *World) Parent(e core.Entity) core.Entity {
	pc, ok := w.Components.Parent.GetComponent(e)
	if !ok {
		return 0
	}
	return pc.Parent
}

// Transform returns e's local transform, identity if absent
func (w *World) Transform(e core.Entity) component.TransformComponent {
	t, ok := w.Components.Transform.GetComponent(e)
	if !ok {
		return component.TransformComponent{Scale: vmath.V3FOne}
	}
	return t
}

// WorldTransform composes local transforms up the parent chain
// Position is parentPos + parentScale * localPos, scale multiplies componentwise
func (w *World) WorldTransform(e core.Entity) component.TransformComponent {
	result := w.Transform(e)
	p := w.Parent(e)
	for depth := 0; p != 0 && depth < parameter.HierarchyMaxDepth; depth++ {
		pt := w.Transform(p)
		result.Position = vmath.V3FAdd(pt.Position, vmath.V3FMul(pt.Scale, result.Position))
		result.Scale = vmath.V3FMul(pt.Scale, result.Scale)
		p = w.Parent(p)
	}
	return result
}
