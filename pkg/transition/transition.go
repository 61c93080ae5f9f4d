// Package transition drives the short-lived state machines that make
// immediate-mode widgets feel continuous: a slider handle being dragged, a
// handle snapping toward a clicked track position, a button flashing after a
// press.
//
// Each widget class owns a single global slot — one active slider
// drag-or-snap across the whole UI, one active press flash. A Slot packs
// its owner identity and a one-bit mode discriminator into a single word
// (see [identity.Pack]); a FlashSlot is keyed by plain identity equality.
// Both are subject to the stale-state rule: when the owner identity is not
// redeclared in a frame, the frame-boundary reconciliation forces the slot
// back to idle regardless of remaining time.
package transition

import (
	"github.com/go-ember/ember/pkg/animation"
	"github.com/go-ember/ember/pkg/identity"
)

// Slot is the single drag-vs-animate transition slot for one widget class.
//
// States: idle → dragging (pressed on the handle itself) or idle →
// animating-to-target (pressed on the surrounding track). A drag derives
// its value from the live pointer every frame and ends on button release;
// an animation integrates elapsed time against a fixed duration and snaps
// to the target with a decelerating overshoot curve.
type Slot struct {
	word       identity.Word
	grabOffset float64
	start      float64
	target     float64
	elapsed    float64
	duration   float64
}

// Idle reports whether no transition is active.
func (s *Slot) Idle() bool {
	return s.word == 0
}

// Owner returns the masked owner identity, or identity.None when idle.
func (s *Slot) Owner() identity.ID {
	return s.word.Owner()
}

// StartDrag begins a drag owned by the given identity. grabOffset is the
// horizontal distance from the pointer to the handle position at press
// time, so the handle does not jump under the pointer.
func (s *Slot) StartDrag(owner identity.ID, grabOffset float64) {
	if owner == identity.None {
		return
	}
	s.word = identity.Pack(owner, false)
	s.grabOffset = grabOffset
	s.elapsed = 0
	s.duration = 0
}

// Dragging reports whether the given identity owns a live drag.
func (s *Slot) Dragging(owner identity.ID) bool {
	return s.word != 0 && !s.word.Animating() && s.word.Owner() == identity.Masked(owner)
}

// GrabOffset returns the pointer-to-handle offset recorded at drag start.
func (s *Slot) GrabOffset() float64 {
	return s.grabOffset
}

// StartAnimate begins an animate-to-target transition owned by the given
// identity, from the current value toward the target over the given
// duration in seconds. The target should already be clamped by the caller.
func (s *Slot) StartAnimate(owner identity.ID, from, target, duration float64) {
	if owner == identity.None {
		return
	}
	s.word = identity.Pack(owner, true)
	s.start = from
	s.target = target
	s.elapsed = 0
	s.duration = duration
}

// Animating reports whether the given identity owns an active
// animate-to-target transition.
func (s *Slot) Animating(owner identity.ID) bool {
	return s.word != 0 && s.word.Animating() && s.word.Owner() == identity.Masked(owner)
}

// Step advances an active animation by dt seconds and returns the eased
// value. Elapsed time is monotonically non-decreasing; the progress ratio
// is clamped so it never exceeds 1. Reaching 1 snaps to the target and
// resets the slot to idle, so running is false on the completing call.
// Calling Step on a slot that is not animating returns the target with
// running false.
func (s *Slot) Step(dt float64) (value float64, running bool) {
	if s.word == 0 || !s.word.Animating() {
		return s.target, false
	}
	if dt > 0 {
		s.elapsed += dt
	}
	if s.duration <= 0 || s.elapsed >= s.duration {
		s.Reset()
		return s.target, false
	}
	progress := animation.ClampUnit(s.elapsed / s.duration)
	return animation.Lerp(s.start, s.target, animation.EaseOutBack(progress)), true
}

// Reset forces the slot back to idle. The frame-boundary reconciliation
// calls this when the owner identity was not declared during the frame.
func (s *Slot) Reset() {
	*s = Slot{target: s.target}
}

// FlashSlot is the single press-flash slot for one widget class. Unlike
// Slot it is keyed by plain identity equality — the flash never coexists
// with a mode discriminator, so the identity keeps its full width.
type FlashSlot struct {
	owner    identity.ID
	elapsed  float64
	duration float64
}

// Start begins a flash owned by the given identity, replacing any flash in
// progress (one active flash at a time across the UI).
func (f *FlashSlot) Start(owner identity.ID, duration float64) {
	if owner == identity.None {
		return
	}
	f.owner = owner
	f.elapsed = 0
	f.duration = duration
}

// Owner returns the flashing identity, or identity.None when idle.
func (f *FlashSlot) Owner() identity.ID {
	return f.owner
}

// ActiveFor reports whether the given identity owns the flash in progress.
func (f *FlashSlot) ActiveFor(owner identity.ID) bool {
	return f.owner != identity.None && f.owner == owner
}

// Step advances the flash by dt seconds and returns the clamped progress
// ratio. Reaching 1 resets the slot to idle; running is false on the
// completing call.
func (f *FlashSlot) Step(dt float64) (progress float64, running bool) {
	if f.owner == identity.None {
		return 1, false
	}
	if dt > 0 {
		f.elapsed += dt
	}
	if f.duration <= 0 || f.elapsed >= f.duration {
		f.Reset()
		return 1, false
	}
	return animation.ClampUnit(f.elapsed / f.duration), true
}

// Reset forces the flash back to idle.
func (f *FlashSlot) Reset() {
	*f = FlashSlot{}
}
