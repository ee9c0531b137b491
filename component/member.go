package component

import (
	"github.com/lixenwraith/glyph-rain/core"
)

// ParentComponent provides O(1) owner resolution from any child entity
type ParentComponent struct {
	Parent core.Entity
}

// ChildrenComponent is the owning side of the hierarchy
// Only the parent's own lifecycle code mutates the list
type ChildrenComponent struct {
	Entities []core.Entity
}
