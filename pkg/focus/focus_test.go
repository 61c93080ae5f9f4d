package focus

import (
	"testing"

	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/identity"
)

var (
	idA = identity.Hash("A")
	idB = identity.Hash("B")
	idC = identity.Hash("C")
)

func newFrame(t *testing.T, ids ...identity.ID) *Controller {
	t.Helper()
	c := NewController(8, nil)
	c.BeginFrame()
	for i, id := range ids {
		c.Register(id, geometry.RectFromLTWH(0, float64(i)*50, 100, 40))
	}
	return c
}

func TestAdvanceForward(t *testing.T) {
	c := newFrame(t, idA, idB, idC)

	if !c.Advance(1) {
		t.Fatal("Advance returned false with focusables registered")
	}
	if c.Focused() != idA {
		t.Errorf("first Advance focused %#x, want A", c.Focused())
	}
	c.Advance(1)
	c.Advance(1)
	if c.Focused() != idC {
		t.Errorf("third Advance focused %#x, want C", c.Focused())
	}
	c.Advance(1)
	if c.Focused() != idA {
		t.Errorf("Advance did not wrap, focused %#x", c.Focused())
	}
}

func TestAdvanceBackward(t *testing.T) {
	c := newFrame(t, idA, idB, idC)

	c.Advance(-1)
	if c.Focused() != idC {
		t.Errorf("backward Advance with nothing focused = %#x, want C", c.Focused())
	}
	c.Advance(-1)
	if c.Focused() != idB {
		t.Errorf("backward Advance = %#x, want B", c.Focused())
	}
}

func TestAdvanceEmpty(t *testing.T) {
	c := newFrame(t)
	if c.Advance(1) {
		t.Error("Advance reported success with no focusables")
	}
	if c.Focused() != identity.None {
		t.Error("Advance focused something in an empty frame")
	}
}

func TestRequestAndClear(t *testing.T) {
	c := newFrame(t, idA, idB)

	c.Request(idB)
	if !c.IsFocused(idB) {
		t.Error("Request did not focus B")
	}
	c.Request(identity.None)
	if !c.IsFocused(idB) {
		t.Error("requesting the sentinel changed focus")
	}
	c.Clear()
	if c.Focused() != identity.None {
		t.Error("Clear did not reset focus")
	}
}

func TestReconcileRetractsStaleFocus(t *testing.T) {
	c := newFrame(t, idA, idB)
	c.Request(idA)
	c.Reconcile()
	if !c.IsFocused(idA) {
		t.Fatal("focus lost while still declared")
	}

	// Next frame A is not declared.
	c.BeginFrame()
	c.Register(idB, geometry.RectFromLTWH(0, 0, 100, 40))
	c.Reconcile()

	if c.Focused() != identity.None {
		t.Errorf("stale focus survived reconciliation: %#x", c.Focused())
	}
}

func TestRegisterIdempotent(t *testing.T) {
	c := newFrame(t, idA, idA, idA)
	if c.Count() != 1 {
		t.Errorf("Count = %d after duplicate registration, want 1", c.Count())
	}
}

func TestCapacityDegrades(t *testing.T) {
	calls := 0
	c := NewController(2, func() { calls++ })
	c.BeginFrame()
	c.Register(idA, geometry.Rect{})
	c.Register(idB, geometry.Rect{})
	c.Register(idC, geometry.Rect{})
	c.Register(identity.Hash("D"), geometry.Rect{})

	if !c.Degraded() {
		t.Error("degraded flag not set after overflow")
	}
	if calls != 1 {
		t.Errorf("degradation callback fired %d times, want 1", calls)
	}
	if c.Count() != 2 {
		t.Errorf("Count = %d, want capacity 2", c.Count())
	}

	c.BeginFrame()
	if c.Degraded() {
		t.Error("degraded flag survived BeginFrame")
	}
}

func TestContainsPoint(t *testing.T) {
	c := newFrame(t, idA, idB)

	if !c.ContainsPoint(geometry.Offset{X: 50, Y: 20}) {
		t.Error("point inside the first focusable not contained")
	}
	if c.ContainsPoint(geometry.Offset{X: 500, Y: 500}) {
		t.Error("point outside every focusable reported contained")
	}
}
