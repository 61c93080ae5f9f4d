// Package input defines the per-frame input snapshot consumed by the
// interaction core.
//
// The host collects pointer and keyboard state from its platform backend and
// hands the core one immutable Snapshot before each frame. Edge fields
// (Pressed, Released, Key, Rune) describe transitions since the previous
// frame and must be populated only on the frame the transition occurred;
// the core derives all click, drag, and activation behavior from them.
package input

import "github.com/go-ember/ember/pkg/geometry"

// Button is a bitmask of pointer buttons.
type Button uint8

const (
	// ButtonLeft is the primary pointer button.
	ButtonLeft Button = 1 << iota
	// ButtonRight is the secondary pointer button.
	ButtonRight
	// ButtonMiddle is the tertiary pointer button.
	ButtonMiddle
)

// Key identifies a non-text key relevant to widget interaction.
type Key int

const (
	// KeyNone means no key transitioned to pressed this frame.
	KeyNone Key = iota
	// KeyEnter is the primary activation key.
	KeyEnter
	// KeySpace activates buttons and toggles.
	KeySpace
	// KeyTab advances keyboard focus (Shift reverses).
	KeyTab
	// KeyEscape dismisses modal surfaces.
	KeyEscape
	// KeyBackspace deletes the rune before the cursor.
	KeyBackspace
	// KeyDelete deletes the rune after the cursor.
	KeyDelete
	// KeyLeft moves the text cursor left.
	KeyLeft
	// KeyRight moves the text cursor right.
	KeyRight
	// KeyHome moves the text cursor to the start.
	KeyHome
	// KeyEnd moves the text cursor to the end.
	KeyEnd
)

// Snapshot is the complete input state for one frame. It is treated as
// immutable for the frame's duration; the core keeps its own consumable
// copy of the key edge so activation can swallow it.
type Snapshot struct {
	// Pointer is the pointer position in logical pixels.
	Pointer geometry.Offset

	// Held contains the buttons currently held down.
	Held Button

	// Pressed contains the buttons that went down since the last frame.
	Pressed Button

	// Released contains the buttons that went up since the last frame.
	Released Button

	// Key is the key that went down this frame, or KeyNone. It is an edge
	// signal: hosts must not repeat it while the key stays held.
	Key Key

	// Shift reports whether a shift modifier accompanied Key.
	Shift bool

	// Rune is the text codepoint produced this frame, or zero.
	Rune rune
}

// JustPressed reports whether b transitioned to down this frame.
func (s Snapshot) JustPressed(b Button) bool {
	return s.Pressed&b != 0
}

// IsHeld reports whether b is currently down.
func (s Snapshot) IsHeld(b Button) bool {
	return s.Held&b != 0
}

// JustReleased reports whether b transitioned to up this frame.
func (s Snapshot) JustReleased(b Button) bool {
	return s.Released&b != 0
}
