package widgets

import (
	"github.com/go-ember/ember/pkg/animation"
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/identity"
	"github.com/go-ember/ember/pkg/interaction"
	"github.com/go-ember/ember/pkg/render"
	"github.com/go-ember/ember/pkg/theme"
)

// Button declares a tonal button and reports whether it was clicked this
// frame, by pointer or by keyboard activation while focused.
func (u *UI) Button(rect geometry.Rect, label string) bool {
	return u.StyledButton(rect, label, theme.ButtonTonal)
}

// StyledButton declares a button with one of the closed style variants.
//
// The button registers as focusable every frame, expands its hit area to
// the touch-target minimum, and flashes through the shared press-flash slot
// on click. The click result is edge-triggered: true for exactly the frame
// the press or activation happened.
func (u *UI) StyledButton(rect geometry.Rect, label string, style theme.ButtonStyle) bool {
	if rect.IsEmpty() {
		return false
	}
	ctx, th := u.Ctx, u.Theme

	id := identity.ForWidget(label, rect)
	ctx.RegisterFocusable(id, rect)
	focused := ctx.IsFocused(id)

	corner := rect.Height() * 0.5
	touch := rect.ExpandedToMinHeight(th.TouchTarget)
	state := ctx.ClassifyRect(rect, touch, false, false)

	flash := ctx.Flash()
	clicked := false
	if ctx.ActivateIfFocused(id) {
		clicked = true
		flash.Start(id, th.FlashDuration)
	}
	if state == interaction.StatePressed {
		clicked = true
		flash.Start(id, th.FlashDuration)
	}

	pal := th.ButtonPalette(style)
	boxColor := pal.Background
	drawRect := rect

	if flash.ActiveFor(id) {
		progress, running := flash.Step(ctx.DT())
		if running {
			// Flash overlay fades out on the EaseInExpo tail; the rect
			// dips briefly via the impulse curve.
			fade := 1 - animation.EaseInExpo(progress)
			overlay := render.StateLayer(pal.Text, uint8(fade*float64(interaction.DragAlpha)))
			if boxColor == render.Transparent {
				boxColor = overlay
			} else {
				boxColor = render.Blend(boxColor, overlay)
			}
			drawRect = rect.Inset(animation.Impulse(progress) * 2)
		}
	} else if state == interaction.StateHovered {
		if boxColor == render.Transparent {
			boxColor = pal.HoverLayer
		} else {
			boxColor = render.Blend(boxColor, pal.HoverLayer)
		}
	}

	if focused {
		focusLayer := render.StateLayer(th.Primary, interaction.PressAlpha)
		if boxColor == render.Transparent {
			boxColor = focusLayer
		} else {
			boxColor = render.Blend(boxColor, focusLayer)
		}
		u.drawFocusRing(rect, corner)
	}

	if boxColor != render.Transparent {
		u.R.DrawBox(drawRect, corner, boxColor)
	}
	if pal.BorderWidth > 0 {
		u.R.DrawOutline(rect, corner, pal.BorderWidth, pal.Border)
	}
	u.drawCenteredText(drawRect, label, pal.Text)

	return clicked
}
