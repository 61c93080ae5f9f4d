package widgets

import (
	"fmt"
	"math"

	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/identity"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/interaction"
	"github.com/go-ember/ember/pkg/render"
)

// SliderOptions customizes SliderEx.
type SliderOptions struct {
	// Disabled suppresses all interaction.
	Disabled bool
	// ShowValue draws a value readout above the handle while dragging.
	ShowValue bool
	// Format is the readout format string. Empty means "%.0f".
	Format string
}

// Slider declares a slider and returns the possibly-updated value.
func (u *UI) Slider(rect geometry.Rect, value, min, max, step float64) float64 {
	return u.SliderEx(rect, value, min, max, step, nil)
}

// SliderEx declares a slider with options.
//
// The slider's identity derives from its layout position and is pre-masked
// because it participates in the packed drag-vs-animate word. Pressing the
// handle starts a drag whose value tracks the pointer each frame; pressing
// the track starts an animation that snaps the handle to the clicked
// position with a decelerating overshoot. Both live in the single shared
// slider slot and are retracted at the frame boundary if this slider stops
// being declared.
func (u *UI) SliderEx(rect geometry.Rect, value, min, max, step float64, opts *SliderOptions) float64 {
	if rect.IsEmpty() || max <= min {
		return value
	}
	ctx, th := u.Ctx, u.Theme

	sid := identity.Masked(identity.ForKind("slider", rect.Left, rect.Top))
	ctx.RegisterSlider(sid)

	value = geometry.Clamp(value, min, max)
	disabled := opts != nil && opts.Disabled

	centerY := rect.Center().Y
	margin := rect.Width() * 0.05
	track := geometry.Rect{
		Left:   rect.Left + margin,
		Top:    centerY - th.SliderTrackHeight*0.5,
		Right:  rect.Right - margin,
		Bottom: centerY + th.SliderTrackHeight*0.5,
	}
	if track.IsEmpty() {
		return value
	}

	norm := (value - min) / (max - min)
	thumbX := track.Left + norm*track.Width()

	slot := ctx.SliderSlot()
	dragging := slot.Dragging(sid)

	thumbSize := th.ThumbIdle
	if dragging {
		thumbSize = th.ThumbPressed
	}
	half := thumbSize * 0.5
	thumb := geometry.Rect{
		Left:   thumbX - half,
		Top:    centerY - half,
		Right:  thumbX + half,
		Bottom: centerY + half,
	}
	touch := thumb.ExpandedToMinSize(th.TouchTarget)

	trackState := ctx.ClassifyRect(track, track.ExpandedToMinHeight(th.TouchTarget), disabled, false)
	thumbState := ctx.ClassifyRect(thumb, touch, disabled, false)

	activeColor := th.Primary
	inactiveColor := th.SurfaceContainerHighest
	handleColor := th.Primary
	if disabled {
		activeColor = render.StateLayer(th.OnSurface, interaction.PressAlpha)
		inactiveColor = activeColor
		handleColor = render.StateLayer(th.OnSurface, interaction.DisableAlpha)
	}

	pointer := ctx.Input().Pointer
	if !disabled {
		if thumbState == interaction.StatePressed && !dragging {
			slot.StartDrag(sid, pointer.X-thumbX)
			dragging = true
		} else if trackState == interaction.StatePressed && !dragging && !slot.Animating(sid) {
			target := geometry.Clamp(pointer.X, track.Left, track.Right)
			slot.StartAnimate(sid, thumbX, target, th.SnapDuration)
		}

		if slot.Animating(sid) {
			thumbX, _ = slot.Step(ctx.DT())
		}

		if dragging {
			if ctx.Input().IsHeld(input.ButtonLeft) {
				thumbX = pointer.X - slot.GrabOffset()
			} else {
				slot.Reset()
				dragging = false
			}
		}
	}

	thumbX = geometry.Clamp(thumbX, track.Left, track.Right)
	norm = (thumbX - track.Left) / track.Width()
	value = min + norm*(max-min)
	if step > 0 {
		value = math.Round(value/step) * step
	}
	value = geometry.Clamp(value, min, max)

	// Re-derive the handle position after step quantization.
	norm = (value - min) / (max - min)
	thumbX = track.Left + norm*track.Width()
	thumb = geometry.Rect{
		Left:   thumbX - half,
		Top:    centerY - half,
		Right:  thumbX + half,
		Bottom: centerY + half,
	}

	u.R.DrawBox(track, track.Height()*0.5, inactiveColor)
	if active := thumbX - track.Left; active > 0 {
		u.R.DrawBox(geometry.Rect{
			Left:   track.Left,
			Top:    track.Top,
			Right:  track.Left + active,
			Bottom: track.Bottom,
		}, track.Height()*0.5, activeColor)
	}

	if (thumbState == interaction.StateHovered || dragging) && !disabled {
		alpha := interaction.HoverAlpha
		if dragging {
			alpha = interaction.DragAlpha
		}
		stateSize := thumbSize * 1.5
		u.R.DrawBox(geometry.Rect{
			Left:   thumbX - stateSize*0.5,
			Top:    centerY - stateSize*0.5,
			Right:  thumbX + stateSize*0.5,
			Bottom: centerY + stateSize*0.5,
		}, stateSize*0.5, render.StateLayer(handleColor, alpha))
	}

	if opts != nil && opts.ShowValue && dragging {
		format := opts.Format
		if format == "" {
			format = "%.0f"
		}
		readout := fmt.Sprintf(format, value)
		w := math.Max(28, u.Text.TextWidth(readout)+th.Padding)
		indicator := geometry.RectFromLTWH(thumbX-w*0.5, thumb.Top-28-8, w, 28)
		u.R.DrawBox(indicator, indicator.Height()*0.5, activeColor)
		u.drawCenteredText(indicator, readout, th.OnPrimary)
	}

	u.R.DrawBox(thumb, half, handleColor)

	return value
}
