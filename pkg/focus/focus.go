// Package focus tracks keyboard focus across frames without a widget tree.
//
// Every focusable widget re-registers itself each frame it is declared,
// building that frame's traversal order — a flat sequence, not a stored
// tree. The focused identity is the only cross-frame state: a weak
// reference compared against the order, never dereferenced. A widget that
// stops being declared loses focus at that frame's boundary via Reconcile.
package focus

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/identity"
)

// Controller owns the focused-identity slot and the per-frame traversal
// order. It is single-threaded by contract, like the rest of the engine.
type Controller struct {
	focused  identity.ID
	order    []identity.ID
	rects    []geometry.Rect
	degraded bool

	onDegraded func()
}

// NewController creates a controller with a fixed traversal capacity.
// onDegraded, if non-nil, is invoked the first time a frame overflows the
// capacity.
func NewController(capacity int, onDegraded func()) *Controller {
	if capacity <= 0 {
		capacity = 64
	}
	return &Controller{
		order:      make([]identity.ID, 0, capacity),
		rects:      make([]geometry.Rect, 0, capacity),
		onDegraded: onDegraded,
	}
}

// BeginFrame clears the traversal order for a new frame. The focused slot
// is cross-frame state and survives until Reconcile decides otherwise.
func (c *Controller) BeginFrame() {
	c.order = c.order[:0]
	c.rects = c.rects[:0]
	c.degraded = false
}

// Register appends a focusable widget to this frame's traversal order.
// Registering the same identity twice in one frame is idempotent. When the
// order is full the registration is silently dropped: the widget still
// renders but cannot be reached by traversal this frame.
func (c *Controller) Register(id identity.ID, rect geometry.Rect) {
	if id == identity.None {
		return
	}
	for _, existing := range c.order {
		if existing == id {
			return
		}
	}
	if len(c.order) == cap(c.order) {
		if !c.degraded {
			c.degraded = true
			if c.onDegraded != nil {
				c.onDegraded()
			}
		}
		return
	}
	c.order = append(c.order, id)
	c.rects = append(c.rects, rect)
}

// Count returns the number of focusables registered this frame.
func (c *Controller) Count() int {
	return len(c.order)
}

// Degraded reports whether the traversal order overflowed this frame.
func (c *Controller) Degraded() bool {
	return c.degraded
}

// Focused returns the focused identity, or identity.None.
func (c *Controller) Focused() identity.ID {
	return c.focused
}

// IsFocused reports whether the given identity currently holds focus.
// The answer is consistent for the whole frame: focus changes apply
// immediately and reconciliation happens only at the frame boundary.
func (c *Controller) IsFocused(id identity.ID) bool {
	return id != identity.None && c.focused == id
}

// Request gives focus to the given identity immediately, visible to all
// widgets declared later in the same frame.
func (c *Controller) Request(id identity.ID) {
	if id == identity.None {
		return
	}
	c.focused = id
}

// Clear resets the focused slot to the sentinel.
func (c *Controller) Clear() {
	c.focused = identity.None
}

// Advance moves focus by delta positions through this frame's traversal
// order, wrapping at both ends. With nothing focused, +1 focuses the first
// widget and -1 the last. Returns false when no focusable was registered
// this frame.
func (c *Controller) Advance(delta int) bool {
	count := len(c.order)
	if count == 0 {
		return false
	}
	current := c.indexOf(c.focused)
	var next int
	if current < 0 {
		if delta >= 0 {
			next = 0
		} else {
			next = count - 1
		}
	} else {
		next = wrapIndex(current+delta, count)
	}
	c.focused = c.order[next]
	return true
}

// ContainsPoint reports whether any focusable registered this frame
// contains the point. The context uses it to detect clicks outside all
// focusables, which clear focus within the frame they occur.
func (c *Controller) ContainsPoint(p geometry.Offset) bool {
	for i := range c.rects {
		if c.rects[i].Contains(p) {
			return true
		}
	}
	return false
}

// Reconcile applies the stale-state rule at the frame boundary: if the
// focused identity was not registered during the frame just completed, the
// slot is reset to the sentinel. Must run exactly once per frame, after all
// declarations.
func (c *Controller) Reconcile() {
	if c.focused == identity.None {
		return
	}
	if c.indexOf(c.focused) < 0 {
		c.focused = identity.None
	}
}

func (c *Controller) indexOf(id identity.ID) int {
	if id == identity.None {
		return -1
	}
	for i, existing := range c.order {
		if existing == id {
			return i
		}
	}
	return -1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
