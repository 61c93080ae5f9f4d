package widgets

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/identity"
	"github.com/go-ember/ember/pkg/interaction"
	"github.com/go-ember/ember/pkg/render"
)

// checkboxBoxSize is the side length of the check square.
const checkboxBoxSize = 18.0

// Checkbox declares a labeled checkbox bound to caller-owned state and
// reports whether it toggled this frame.
func (u *UI) Checkbox(rect geometry.Rect, label string, checked *bool) bool {
	if rect.IsEmpty() || checked == nil {
		return false
	}
	ctx, th := u.Ctx, u.Theme

	id := identity.ForWidget(label, rect)
	ctx.RegisterFocusable(id, rect)
	focused := ctx.IsFocused(id)

	touch := rect.ExpandedToMinHeight(th.TouchTarget)
	state := ctx.ClassifyRect(rect, touch, false, false)

	toggled := false
	if state == interaction.StatePressed || ctx.ActivateIfFocused(id) {
		*checked = !*checked
		toggled = true
		ctx.Flash().Start(id, th.FlashDuration)
	}

	centerY := rect.Center().Y
	box := geometry.Rect{
		Left:   rect.Left,
		Top:    centerY - checkboxBoxSize*0.5,
		Right:  rect.Left + checkboxBoxSize,
		Bottom: centerY + checkboxBoxSize*0.5,
	}

	if state == interaction.StateHovered {
		hover := box.Inset(-(th.TouchTarget - checkboxBoxSize) * 0.25)
		u.R.DrawBox(hover, hover.Width()*0.5, render.StateLayer(th.OnSurface, interaction.HoverAlpha))
	}
	if focused {
		u.drawFocusRing(box, 2)
	}

	if *checked {
		u.R.DrawBox(box, 2, th.Primary)
		u.drawCenteredText(box, "✓", th.OnPrimary)
	} else {
		u.R.DrawOutline(box, 2, 2, th.Outline)
	}

	labelX := box.Right + th.Padding
	u.R.DrawText(geometry.Offset{
		X: labelX,
		Y: rect.Top + (rect.Height()-u.Text.LineHeight())*0.5,
	}, label, th.OnSurface)

	return toggled
}
