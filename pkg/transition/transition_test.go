package transition

import (
	"testing"

	"github.com/go-ember/ember/pkg/identity"
)

const step = 1.0 / 60.0

func sliderID() identity.ID {
	return identity.Masked(identity.ForKind("slider", 10, 10))
}

func TestSlotDragLifecycle(t *testing.T) {
	var s Slot
	id := sliderID()

	if !s.Idle() {
		t.Fatal("new slot not idle")
	}

	s.StartDrag(id, 3.5)
	if !s.Dragging(id) {
		t.Error("Dragging false after StartDrag")
	}
	if s.Animating(id) {
		t.Error("drag reported as animating")
	}
	if s.GrabOffset() != 3.5 {
		t.Errorf("GrabOffset = %v, want 3.5", s.GrabOffset())
	}
	if s.Owner() != id {
		t.Errorf("Owner = %#x, want %#x", s.Owner(), id)
	}

	s.Reset()
	if !s.Idle() || s.Dragging(id) {
		t.Error("slot not idle after Reset")
	}
}

func TestSlotDragOwnership(t *testing.T) {
	var s Slot
	a := identity.Masked(identity.ForKind("slider", 0, 0))
	b := identity.Masked(identity.ForKind("slider", 0, 100))

	s.StartDrag(a, 0)
	if s.Dragging(b) {
		t.Error("a different slider reported as dragging")
	}
}

func TestSlotHighBitOwner(t *testing.T) {
	// An owner whose raw hash has bit 31 set must still match after the
	// packed word strips it.
	var s Slot
	raw := identity.ID(0x80000042)

	s.StartDrag(raw, 0)
	if !s.Dragging(raw) {
		t.Error("high-bit owner did not match its own drag")
	}
	if !s.Dragging(identity.Masked(raw)) {
		t.Error("masked form of the owner did not match")
	}
}

func TestSlotAnimateLifecycle(t *testing.T) {
	var s Slot
	id := sliderID()

	s.StartAnimate(id, 0, 100, 0.2)
	if !s.Animating(id) {
		t.Error("Animating false after StartAnimate")
	}
	if s.Dragging(id) {
		t.Error("animation reported as dragging")
	}

	var last float64
	running := true
	steps := 0
	for running {
		var v float64
		v, running = s.Step(step)
		if running && v < last-30 {
			// EaseOutBack may overshoot above the target but the eased
			// value should never collapse backwards dramatically.
			t.Fatalf("eased value jumped from %v to %v", last, v)
		}
		last = v
		steps++
		if steps > 1000 {
			t.Fatal("animation never completed")
		}
	}

	if last != 100 {
		t.Errorf("final value = %v, want the target 100", last)
	}
	if !s.Idle() {
		t.Error("slot not idle after completion")
	}
}

func TestSlotStepClampsProgress(t *testing.T) {
	var s Slot
	id := sliderID()
	s.StartAnimate(id, 0, 50, 0.1)

	// A single giant delta completes in one call, snapped to the target.
	v, running := s.Step(10)
	if running {
		t.Error("running true after the duration elapsed")
	}
	if v != 50 {
		t.Errorf("value = %v, want snapped target 50", v)
	}
}

func TestSlotStepWhenIdle(t *testing.T) {
	var s Slot
	if _, running := s.Step(step); running {
		t.Error("idle slot reported running")
	}
}

func TestSlotZeroDuration(t *testing.T) {
	var s Slot
	id := sliderID()
	s.StartAnimate(id, 0, 25, 0)
	v, running := s.Step(step)
	if running || v != 25 {
		t.Errorf("zero-duration animation: value %v running %v, want 25 false", v, running)
	}
}

func TestFlashSlotLifecycle(t *testing.T) {
	var f FlashSlot
	id := identity.Hash("Save")

	f.Start(id, 0.25)
	if !f.ActiveFor(id) {
		t.Error("ActiveFor false after Start")
	}
	if f.ActiveFor(identity.Hash("Cancel")) {
		t.Error("flash active for a different identity")
	}

	progress, running := f.Step(step)
	if !running {
		t.Error("flash completed on the first step")
	}
	if progress <= 0 || progress >= 1 {
		t.Errorf("progress = %v, want in (0, 1)", progress)
	}

	// Run out the clock.
	for i := 0; i < 60; i++ {
		if _, running = f.Step(step); !running {
			break
		}
	}
	if running {
		t.Error("flash never completed")
	}
	if f.Owner() != identity.None {
		t.Error("flash owner survived completion")
	}
}

func TestFlashSlotReplaces(t *testing.T) {
	var f FlashSlot
	a, b := identity.Hash("A"), identity.Hash("B")

	f.Start(a, 0.25)
	f.Step(step)
	f.Start(b, 0.25)

	if f.ActiveFor(a) {
		t.Error("replaced flash still active for the old owner")
	}
	if !f.ActiveFor(b) {
		t.Error("flash not active for the new owner")
	}
	if progress, _ := f.Step(step); progress > 0.5 {
		t.Errorf("replacement did not restart the clock, progress = %v", progress)
	}
}

func TestFlashSlotIgnoresSentinel(t *testing.T) {
	var f FlashSlot
	f.Start(identity.None, 0.25)
	if f.Owner() != identity.None {
		t.Error("sentinel start activated the flash")
	}
}
