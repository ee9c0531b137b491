package engine

import (
	"github.com/lixenwraith/glyph-rain/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; pointers remain valid for the world lifetime
type ComponentStore struct {
	// Scene graph
	Transform *Store[component.TransformComponent]
	Parent    *Store[component.ParentComponent]
	Children  *Store[component.ChildrenComponent]

	// Lifecycle
	Trail    *Store[component.TrailComponent]
	Glyph    *Store[component.GlyphComponent]
	Decay    *Store[component.DecayComponent]
	Animator *Store[component.AnimatorComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Parent:    NewStore[component.ParentComponent](),
		Children:  NewStore[component.ChildrenComponent](),

		Trail:    NewStore[component.TrailComponent](),
		Glyph:    NewStore[component.GlyphComponent](),
		Decay:    NewStore[component.DecayComponent](),
		Animator: NewStore[component.AnimatorComponent](),
	}
}

// all returns every store for uniform entity removal
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Transform,
		c.Parent,
		c.Children,
		c.Trail,
		c.Glyph,
		c.Decay,
		c.Animator,
	}
}
