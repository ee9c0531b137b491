package component

import "github.com/lixenwraith/glyph-rain/tween"

// AnimationState summarizes running tweens on an entity
type AnimationState uint8

const (
	AnimationNone AnimationState = iota
	AnimationShrinkingOut
	AnimationColorFading
)

// AnimatorComponent holds at most one tween per attribute channel
// Scale and color run independently and may overlap
type AnimatorComponent struct {
	Scale *tween.Tween
	Color *tween.Tween
}

// State reports the dominant animation, shrink takes precedence
func (a AnimatorComponent) State() AnimationState {
	switch {
	case a.Scale != nil:
		return AnimationShrinkingOut
	case a.Color != nil && !a.Color.Finished():
		return AnimationColorFading
	default:
		return AnimationNone
	}
}

// Empty reports whether no tween is attached
func (a AnimatorComponent) Empty() bool {
	return a.Scale == nil && a.Color == nil
}
