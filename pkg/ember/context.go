// Package ember is the immediate-mode interaction core: identity,
// interaction state, and stale-state tracking for widgets that are
// redeclared from scratch every frame.
//
// The host owns one Context for the engine's lifetime and calls
// [Context.BeginFrame] and [Context.EndFrame] exactly once each, in order,
// per render tick. Between them, widgets are declared in call order; each
// recomputes its identity, classifies itself against the frame's input
// snapshot, registers in the per-frame field registry, and may drive one of
// the transition slots. EndFrame reconciles every cross-frame slot (focused
// identity, active drag or animation, press flash, modal surface) against
// what was actually declared and retracts whatever went stale — a widget
// that silently stops being declared loses its focus, drag, and animation
// state within that same frame, with no teardown call required.
//
// The Context is exclusively owned by a single goroutine for the duration
// of a frame. No locking, no allocation after construction, and no
// condition that terminates the host: capacity overflows degrade locally
// and are reported through the configured error handler.
package ember

import (
	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/focus"
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/identity"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/interaction"
	"github.com/go-ember/ember/pkg/registry"
	"github.com/go-ember/ember/pkg/transition"
)

// Config sizes a Context at construction. All capacities are fixed for the
// Context's lifetime.
type Config struct {
	// MaxFields is the per-category capacity of the field registry.
	// Zero selects registry.DefaultCapacity.
	MaxFields int

	// MaxFocusables is the capacity of the per-frame focus traversal
	// order. Zero selects the same default as MaxFields.
	MaxFocusables int

	// Handler receives out-of-band error reports (capacity degradation,
	// misordered frame calls). Nil selects a stderr LogHandler.
	Handler errors.Handler
}

// Context is the process-wide interaction state for one UI.
type Context struct {
	reg *registry.Registry
	foc *focus.Controller

	slider  transition.Slot
	segment transition.Slot
	flash   transition.FlashSlot

	in       input.Snapshot
	key      input.Key
	keyShift bool
	dt       float64
	inFrame  bool

	modalOwner identity.ID
	modalSeen  bool

	handler errors.Handler
}

// New creates a Context with fixed capacities. No allocation happens after
// this call.
func New(cfg Config) *Context {
	handler := cfg.Handler
	if handler == nil {
		handler = &errors.LogHandler{}
	}
	focusCap := cfg.MaxFocusables
	if focusCap <= 0 {
		focusCap = cfg.MaxFields
	}
	c := &Context{handler: handler}
	c.reg = registry.New(registry.Config{
		Capacity: cfg.MaxFields,
		OnDegraded: func(cat registry.Category) {
			handler.Handle(errors.Newf("registry.Register", errors.KindCapacity,
				"%s registry full, stale-state protection degraded this frame", cat))
		},
	})
	c.foc = focus.NewController(focusCap, func() {
		handler.Handle(errors.Newf("focus.Register", errors.KindCapacity,
			"focus order full, widget unreachable by traversal this frame"))
	})
	return c
}

// SetInput installs the input snapshot for the next frame. Must be called
// before BeginFrame; a mid-frame call is reported and ignored so the
// snapshot stays immutable for the frame's duration.
func (c *Context) SetInput(s input.Snapshot) {
	if c.inFrame {
		c.handler.Handle(errors.Newf("ember.SetInput", errors.KindArgument,
			"input snapshot changed mid-frame, ignored"))
		return
	}
	c.in = s
}

// Input returns the frame's immutable input snapshot. The Key field of the
// snapshot reflects what the host supplied; use Key or ConsumeKey for the
// consumable per-frame copy.
func (c *Context) Input() input.Snapshot {
	return c.in
}

// DT returns the frame's delta time in seconds.
func (c *Context) DT() float64 {
	return c.dt
}

// BeginFrame starts a frame: resets every per-frame set to empty,
// increments the frame counter, and arms the consumable key edge. Negative
// delta times are treated as zero.
func (c *Context) BeginFrame(dt float64) {
	if c.inFrame {
		c.handler.Handle(errors.Newf("ember.BeginFrame", errors.KindArgument,
			"BeginFrame called twice without EndFrame, ignored"))
		return
	}
	if dt < 0 {
		dt = 0
	}
	c.dt = dt
	c.key = c.in.Key
	c.keyShift = c.in.Shift
	c.modalSeen = false
	c.reg.BeginFrame()
	c.foc.BeginFrame()
	c.inFrame = true
}

// EndFrame closes the frame and runs the reconciliation exactly once:
// unconsumed Tab advances focus through this frame's traversal order, a
// press outside every focusable clears focus, and each cross-frame slot
// whose owner was not declared this frame is retracted to its sentinel.
func (c *Context) EndFrame() {
	if !c.inFrame {
		c.handler.Handle(errors.Newf("ember.EndFrame", errors.KindArgument,
			"EndFrame called without matching BeginFrame, ignored"))
		return
	}

	if c.key == input.KeyTab {
		c.key = input.KeyNone
		if c.keyShift {
			c.foc.Advance(-1)
		} else {
			c.foc.Advance(1)
		}
	}

	if c.in.JustPressed(input.ButtonLeft) && !c.foc.ContainsPoint(c.in.Pointer) {
		c.foc.Clear()
	}

	c.foc.Reconcile()

	if owner := c.slider.Owner(); owner != identity.None &&
		!c.reg.IsRegistered(registry.CategorySlider, owner) {
		c.slider.Reset()
	}
	if owner := c.segment.Owner(); owner != identity.None &&
		!c.reg.IsRegistered(registry.CategoryFocusable, owner) {
		c.segment.Reset()
	}
	if owner := c.flash.Owner(); owner != identity.None &&
		!c.reg.IsRegistered(registry.CategoryFocusable, owner) {
		c.flash.Reset()
	}
	if c.modalOwner != identity.None && !c.modalSeen {
		c.modalOwner = identity.None
	}

	c.inFrame = false
}

// FrameNumber returns the monotonic frame counter.
func (c *Context) FrameNumber() uint64 {
	return c.reg.FrameNumber()
}

// RegisterTextField records a text field as declared this frame.
func (c *Context) RegisterTextField(id identity.ID) bool {
	return c.reg.Register(registry.CategoryTextField, id)
}

// RegisterSlider records a slider as declared this frame. Slider identities
// participate in the packed transition word and must be pre-masked via
// identity.Masked.
func (c *Context) RegisterSlider(id identity.ID) bool {
	return c.reg.Register(registry.CategorySlider, id)
}

// IsRegistered reports whether the identity was declared in the category
// this frame.
func (c *Context) IsRegistered(cat registry.Category, id identity.ID) bool {
	return c.reg.IsRegistered(cat, id)
}

// FieldCount returns the number of identities declared in the category this
// frame.
func (c *Context) FieldCount(cat registry.Category) int {
	return c.reg.Count(cat)
}

// Degraded reports whether the category overflowed its capacity this frame.
func (c *Context) Degraded(cat registry.Category) bool {
	return c.reg.Degraded(cat)
}

// ResetFieldIDs is the explicit bulk clear of all per-frame registrations,
// for host-level teardown outside the normal frame cadence.
func (c *Context) ResetFieldIDs() {
	c.reg.Reset()
}

// RegisterFocusable adds a widget to this frame's focus traversal order and
// to the focusable presence set used by flash and segment retraction.
func (c *Context) RegisterFocusable(id identity.ID, rect geometry.Rect) {
	c.reg.Register(registry.CategoryFocusable, id)
	c.foc.Register(id, rect)
}

// IsFocused reports whether the identity holds keyboard focus. Consistent
// for the whole frame; focus mutations apply immediately to widgets
// declared later in the same frame.
func (c *Context) IsFocused(id identity.ID) bool {
	return c.foc.IsFocused(id)
}

// Focused returns the focused identity, or identity.None.
func (c *Context) Focused() identity.ID {
	return c.foc.Focused()
}

// RequestFocus gives focus to the identity immediately.
func (c *Context) RequestFocus(id identity.ID) {
	c.foc.Request(id)
}

// ClearFocus resets the focused slot to the sentinel.
func (c *Context) ClearFocus() {
	c.foc.Clear()
}

// AdvanceFocus moves focus by delta through this frame's traversal order,
// wrapping at both ends.
func (c *Context) AdvanceFocus(delta int) bool {
	return c.foc.Advance(delta)
}

// Key returns the frame's consumable key edge, or input.KeyNone once
// consumed.
func (c *Context) Key() input.Key {
	return c.key
}

// ConsumeKey swallows the frame's key edge if it matches k, so no other
// widget can react to it this frame. Returns whether it was consumed.
func (c *Context) ConsumeKey(k input.Key) bool {
	if k == input.KeyNone || c.key != k {
		return false
	}
	c.key = input.KeyNone
	return true
}

// ActivateIfFocused reports a keyboard activation for the identity: true
// exactly once per press edge, when the identity holds focus and the
// frame's key edge is an activation key (Enter or Space). The key is
// consumed so it cannot also activate another widget this frame.
func (c *Context) ActivateIfFocused(id identity.ID) bool {
	if !c.foc.IsFocused(id) {
		return false
	}
	return c.ConsumeKey(input.KeyEnter) || c.ConsumeKey(input.KeySpace)
}

// BeginModal marks a modal surface as declared this frame. While a modal is
// active, classification swallows interaction for every widget outside it.
// The modal slot follows the same stale-state rule as the others: stop
// declaring the modal and it deactivates at that frame's boundary.
func (c *Context) BeginModal(id identity.ID) {
	if id == identity.None {
		return
	}
	c.modalOwner = id
	c.modalSeen = true
}

// EndModal closes the modal declaration scope for this frame. The modal
// stays active until a frame passes without BeginModal.
func (c *Context) EndModal() {
	// Presence is what keeps the modal alive; nothing to do per call.
}

// ModalActive reports whether a modal surface is currently active.
func (c *Context) ModalActive() bool {
	return c.modalOwner != identity.None
}

// ClassifyRect classifies a widget's geometry against the frame's input.
// modalOwner marks widgets declared inside the active modal surface.
func (c *Context) ClassifyRect(bounds, touch geometry.Rect, disabled, modalOwner bool) interaction.State {
	return interaction.Classify(interaction.Params{
		Bounds:         bounds,
		Touch:          touch,
		Pointer:        c.in.Pointer,
		PointerPressed: c.in.JustPressed(input.ButtonLeft),
		PointerHeld:    c.in.IsHeld(input.ButtonLeft),
		Disabled:       disabled,
		ModalBlocking:  c.modalOwner != identity.None,
		ModalOwner:     modalOwner,
	})
}

// SliderSlot returns the single drag-vs-animate slot shared by all sliders.
func (c *Context) SliderSlot() *transition.Slot {
	return &c.slider
}

// SegmentSlot returns the animate-only slot shared by all segmented
// controls.
func (c *Context) SegmentSlot() *transition.Slot {
	return &c.segment
}

// Flash returns the single press-flash slot shared by all buttons.
func (c *Context) Flash() *transition.FlashSlot {
	return &c.flash
}
