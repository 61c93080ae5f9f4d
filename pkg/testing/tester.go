// Package testing provides a headless frame-stepping harness for the
// interaction core and the widget layer.
//
// A FrameTester owns a Context, a recording renderer, and a scripted input
// state. Tests queue pointer and key input, then Pump frames: each Pump
// computes the button edges since the previous frame, installs the
// snapshot, runs the frame function between BeginFrame and EndFrame, and
// leaves the recorded draw operations available for assertions.
//
// Import under a name like embertest to avoid clashing with the standard
// testing package.
package testing

import (
	"testing"

	"github.com/go-ember/ember/pkg/ember"
	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/render"
	"github.com/go-ember/ember/pkg/widgets"
)

// StepDT is the default frame delta: one 60 Hz frame.
const StepDT = 1.0 / 60.0

// FrameTester drives scripted frames against a headless UI.
type FrameTester struct {
	Ctx *ember.Context
	UI  *widgets.UI
	Rec *render.Recorder

	pointer  geometry.Offset
	held     input.Button
	wantHeld input.Button
	key      input.Key
	shift    bool
	text     rune
}

// NewFrameTester creates a tester with default capacities. Engine error
// reports go to the test log.
func NewFrameTester(t *testing.T) *FrameTester {
	t.Helper()
	ctx := ember.New(ember.Config{
		Handler: errors.HandlerFunc(func(err *errors.Error) {
			t.Logf("engine: %v", err)
		}),
	})
	rec := &render.Recorder{}
	return &FrameTester{
		Ctx: ctx,
		UI:  widgets.New(ctx, rec, nil, nil),
		Rec: rec,
	}
}

// MoveTo places the pointer for subsequent frames.
func (ft *FrameTester) MoveTo(x, y float64) {
	ft.pointer = geometry.Offset{X: x, Y: y}
}

// Press holds the button down starting with the next Pump, which will see
// its down edge.
func (ft *FrameTester) Press(b input.Button) {
	ft.wantHeld |= b
}

// Release lets the button up starting with the next Pump, which will see
// its up edge.
func (ft *FrameTester) Release(b input.Button) {
	ft.wantHeld &^= b
}

// Key queues a key edge for the next Pump only.
func (ft *FrameTester) Key(k input.Key) {
	ft.key = k
}

// ShiftKey queues a shifted key edge for the next Pump only.
func (ft *FrameTester) ShiftKey(k input.Key) {
	ft.key = k
	ft.shift = true
}

// Type queues a text codepoint for the next Pump only.
func (ft *FrameTester) Type(r rune) {
	ft.text = r
}

// Pump runs one frame at the default 60 Hz delta.
func (ft *FrameTester) Pump(frame func(*widgets.UI)) {
	ft.PumpFor(StepDT, frame)
}

// PumpFor runs one frame with an explicit delta time. The frame function
// declares widgets between BeginFrame and EndFrame; nil declares nothing.
func (ft *FrameTester) PumpFor(dt float64, frame func(*widgets.UI)) {
	pressed := ft.wantHeld &^ ft.held
	released := ft.held &^ ft.wantHeld
	ft.held = ft.wantHeld

	ft.Rec.Reset()
	ft.Ctx.SetInput(input.Snapshot{
		Pointer:  ft.pointer,
		Held:     ft.held,
		Pressed:  pressed,
		Released: released,
		Key:      ft.key,
		Shift:    ft.shift,
		Rune:     ft.text,
	})
	ft.key = input.KeyNone
	ft.shift = false
	ft.text = 0

	ft.Ctx.BeginFrame(dt)
	if frame != nil {
		frame(ft.UI)
	}
	ft.Ctx.EndFrame()
}

// ClickAt presses and releases the primary button at the given position,
// pumping one frame for each edge.
func (ft *FrameTester) ClickAt(x, y float64, frame func(*widgets.UI)) {
	ft.MoveTo(x, y)
	ft.Press(input.ButtonLeft)
	ft.Pump(frame)
	ft.Release(input.ButtonLeft)
	ft.Pump(frame)
}
