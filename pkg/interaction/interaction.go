// Package interaction classifies one frame of pointer input against one
// widget's geometry into a discrete interaction state.
//
// Classify is a pure function: it stores nothing, allocates nothing, and
// identical inputs always produce the identical state. Everything that must
// feel stateful across frames (focus, drags, animations) lives elsewhere,
// keyed by widget identity; this package only answers "what is the pointer
// doing to this rectangle right now".
package interaction

import "github.com/go-ember/ember/pkg/geometry"

// State is the discrete interaction state of a widget for one frame.
type State int

const (
	// StateDefault means no interaction applies this frame.
	StateDefault State = iota
	// StateHovered means the pointer is inside the widget's touch area.
	StateHovered
	// StatePressed means the pointer went down inside the touch area this
	// frame. It is an edge signal, true for exactly one frame per press;
	// treat it as a one-shot click. Drag continuation is the transition
	// engine's job, not a re-derived Pressed.
	StatePressed
	// StateFocused marks keyboard focus. Classify never returns it; the
	// widget layer resolves it from the focus controller and uses it for
	// the focus state layer.
	StateFocused
	// StateDisabled means the widget ignores input but still occupies
	// layout space.
	StateDisabled
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateHovered:
		return "hovered"
	case StatePressed:
		return "pressed"
	case StateFocused:
		return "focused"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Interactive reports whether the state should show an interactive
// treatment (hover or press feedback).
func (s State) Interactive() bool {
	return s == StateHovered || s == StatePressed
}

// State-layer opacities, as alpha bytes over the base color.
const (
	// HoverAlpha is the hover state-layer opacity (8%).
	HoverAlpha uint8 = 0x14
	// PressAlpha is the press and focus state-layer opacity (12%).
	PressAlpha uint8 = 0x1F
	// DragAlpha is the active-drag state-layer opacity (16%).
	DragAlpha uint8 = 0x29
	// DisableAlpha is the disabled content opacity (38%).
	DisableAlpha uint8 = 0x61
)

// LayerAlpha returns the state-layer opacity for the state, or zero when no
// layer should be drawn.
func (s State) LayerAlpha() uint8 {
	switch s {
	case StateHovered:
		return HoverAlpha
	case StatePressed, StateFocused:
		return PressAlpha
	default:
		return 0
	}
}

// Params carries one widget's geometry and the frame's pointer state into
// Classify.
type Params struct {
	// Bounds is the widget's visual rectangle.
	Bounds geometry.Rect

	// Touch is the expanded hit area. The zero rect means "use Bounds".
	Touch geometry.Rect

	// Pointer is the pointer position this frame.
	Pointer geometry.Offset

	// PointerPressed is the down edge: the button transitioned from up to
	// down this frame.
	PointerPressed bool

	// PointerHeld reports the button currently held.
	PointerHeld bool

	// Disabled suppresses all input branches for this widget.
	Disabled bool

	// ModalBlocking is true while a modal surface is active.
	ModalBlocking bool

	// ModalOwner is true for widgets declared inside the active modal.
	ModalOwner bool
}

// Classify maps one frame of input against one widget's geometry to a
// State.
//
// Policy, in order: an active modal swallows interaction for everything
// outside it (StateDefault, not merely a visual mute); disabled widgets
// classify as StateDisabled without any hit test; hover tests the expanded
// touch rect, not the visual rect; press is recognized only on the down
// edge while hovered.
//
// Overlapping widgets resolve by declaration order — a later widget's hit
// test is not excluded by an earlier one. Callers are responsible for not
// overlapping interactive rects.
func Classify(p Params) State {
	if p.ModalBlocking && !p.ModalOwner {
		return StateDefault
	}
	if p.Disabled {
		return StateDisabled
	}
	touch := p.Touch
	if touch.IsEmpty() {
		touch = p.Bounds
	}
	if !touch.Contains(p.Pointer) {
		return StateDefault
	}
	if p.PointerPressed {
		return StatePressed
	}
	return StateHovered
}
