package widgets

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/identity"
	"github.com/go-ember/ember/pkg/interaction"
	"github.com/go-ember/ember/pkg/render"
)

// Segment count limits for a segmented control.
const (
	SegmentedMinSegments = 2
	SegmentedMaxSegments = 5
)

// Segmented declares a segmented control bound to a caller-owned selection
// index and reports whether the selection changed this frame.
//
// Selecting a different segment slides the highlight from the old segment
// to the new one through the shared segment slot, with the same overshoot
// curve and stale-state retraction as the slider snap. Keyboard activation
// while focused cycles the selection.
func (u *UI) Segmented(rect geometry.Rect, entries []string, selected *int) bool {
	if rect.IsEmpty() || selected == nil ||
		len(entries) < SegmentedMinSegments || len(entries) > SegmentedMaxSegments {
		return false
	}
	ctx, th := u.Ctx, u.Theme

	// Masked because the highlight slide lives in a packed transition word.
	cid := identity.Masked(identity.ForKind("segmented", rect.Left, rect.Top))
	ctx.RegisterFocusable(cid, rect)
	focused := ctx.IsFocused(cid)

	if *selected < 0 || *selected >= len(entries) {
		*selected = 0
	}

	segW := rect.Width() / float64(len(entries))
	pill := rect.Height() * 0.5
	segmentX := func(i int) float64 { return rect.Left + segW*float64(i) }

	slot := ctx.SegmentSlot()
	highlightX := segmentX(*selected)
	if slot.Animating(cid) {
		highlightX, _ = slot.Step(ctx.DT())
	}

	changed := false
	selectSegment := func(i int) {
		slot.StartAnimate(cid, highlightX, segmentX(i), th.SnapDuration)
		*selected = i
		changed = true
	}

	if ctx.ActivateIfFocused(cid) {
		selectSegment((*selected + 1) % len(entries))
	}

	u.R.DrawBox(rect, pill, th.SurfaceContainerHighest)

	// The highlight keeps pill corners only at the outer segments.
	corner := 0.0
	if *selected == 0 || *selected == len(entries)-1 {
		corner = pill
	}
	u.R.DrawBox(geometry.Rect{
		Left:   highlightX,
		Top:    rect.Top,
		Right:  highlightX + segW,
		Bottom: rect.Bottom,
	}, corner, th.SecondaryContainer)

	if focused {
		u.drawFocusRing(rect, pill)
	}

	for i, entry := range entries {
		seg := geometry.Rect{
			Left:   segmentX(i),
			Top:    rect.Top,
			Right:  segmentX(i) + segW,
			Bottom: rect.Bottom,
		}
		isSelected := i == *selected
		state := ctx.ClassifyRect(seg, seg, false, false)

		if !isSelected && state.Interactive() {
			segCorner := 0.0
			if i == 0 || i == len(entries)-1 {
				segCorner = pill
			}
			u.R.DrawBox(seg, segCorner, render.StateLayer(th.OnSurface, state.LayerAlpha()))
		}

		if state == interaction.StatePressed && !isSelected {
			selectSegment(i)
			isSelected = true
		}

		label := entry
		textColor := th.OnSurface
		if isSelected {
			label = "✓ " + entry
			textColor = th.OnSecondaryContainer
		}
		u.drawCenteredText(seg, label, textColor)
	}

	return changed
}
