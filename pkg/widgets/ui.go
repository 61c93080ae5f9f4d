// Package widgets is the immediate-mode widget layer built on the
// interaction core.
//
// Every widget is a plain function call: it receives an already-computed
// rectangle, recomputes its identity, classifies itself against the frame's
// input, registers with the core for stale-state protection, draws through
// the narrow render contracts, and returns its one-frame result (clicked,
// changed, toggled). Nothing here survives the call — all cross-frame
// behavior comes from the core's slots.
package widgets

import (
	"github.com/go-ember/ember/pkg/ember"
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/render"
	"github.com/go-ember/ember/pkg/theme"
)

// UI bundles the context, render contracts, and theme a frame's widget
// declarations run against.
type UI struct {
	Ctx   *ember.Context
	R     render.Renderer
	Text  render.TextMetrics
	Theme *theme.Theme
}

// New creates a UI over the given context and renderer. A nil metrics
// falls back to the built-in basicfont face; a nil theme to the default
// theme.
func New(ctx *ember.Context, r render.Renderer, text render.TextMetrics, th *theme.Theme) *UI {
	if text == nil {
		text = render.NewBasicMetrics()
	}
	if th == nil {
		th = theme.Default()
	}
	return &UI{Ctx: ctx, R: r, Text: text, Theme: th}
}

// drawCenteredText draws a single line centered in rect.
func (u *UI) drawCenteredText(rect geometry.Rect, s string, color render.Color) {
	w := u.Text.TextWidth(s)
	h := u.Text.LineHeight()
	u.R.DrawText(geometry.Offset{
		X: rect.Left + (rect.Width()-w)*0.5,
		Y: rect.Top + (rect.Height()-h)*0.5,
	}, s, color)
}

// drawFocusRing strokes the keyboard focus indicator just outside rect.
func (u *UI) drawFocusRing(rect geometry.Rect, corner float64) {
	th := u.Theme
	ring := rect.Inset(-(th.FocusRingGap + th.FocusRingWidth*0.5))
	u.R.DrawOutline(ring, corner+th.FocusRingGap, th.FocusRingWidth, th.Primary)
}
