package widgets

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/identity"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/interaction"
)

// TextState is the caller-owned content of a text field: the engine stores
// no text. The field keyed to this state is identified by its layout
// position, so the same TextState can back a field that moves between
// frames without losing focus semantics.
type TextState struct {
	// Runes is the field content.
	Runes []rune
	// Cursor is the insertion index in [0, len(Runes)].
	Cursor int
}

// String returns the content as a string.
func (ts *TextState) String() string {
	return string(ts.Runes)
}

// SetText replaces the content and clamps the cursor to the end.
func (ts *TextState) SetText(s string) {
	ts.Runes = []rune(s)
	ts.Cursor = len(ts.Runes)
}

// TextField declares a single-line text input and reports whether its
// content changed this frame.
//
// The field registers in both the text-field category and the focusable
// traversal order every frame it is declared; keyboard focus is the core's
// cross-frame slot, so a field that is conditionally hidden loses focus at
// that frame's boundary with no teardown call. Clicking the field focuses
// it and places the cursor at the clicked position.
func (u *UI) TextField(rect geometry.Rect, st *TextState) bool {
	if rect.IsEmpty() || st == nil {
		return false
	}
	ctx, th := u.Ctx, u.Theme

	tid := identity.ForKind("textfield", rect.Left, rect.Top)
	ctx.RegisterTextField(tid)
	ctx.RegisterFocusable(tid, rect)

	if st.Cursor < 0 {
		st.Cursor = 0
	}
	if st.Cursor > len(st.Runes) {
		st.Cursor = len(st.Runes)
	}

	touch := rect.ExpandedToMinHeight(th.TouchTarget)
	state := ctx.ClassifyRect(rect, touch, false, false)

	textLeft := rect.Left + th.Padding
	if state == interaction.StatePressed {
		ctx.RequestFocus(tid)
		st.Cursor = u.cursorIndexAt(st, textLeft, ctx.Input().Pointer.X)
	}
	focused := ctx.IsFocused(tid)

	changed := false
	if focused {
		switch {
		case ctx.ConsumeKey(input.KeyBackspace):
			if st.Cursor > 0 {
				st.Runes = append(st.Runes[:st.Cursor-1], st.Runes[st.Cursor:]...)
				st.Cursor--
				changed = true
			}
		case ctx.ConsumeKey(input.KeyDelete):
			if st.Cursor < len(st.Runes) {
				st.Runes = append(st.Runes[:st.Cursor], st.Runes[st.Cursor+1:]...)
				changed = true
			}
		case ctx.ConsumeKey(input.KeyLeft):
			if st.Cursor > 0 {
				st.Cursor--
			}
		case ctx.ConsumeKey(input.KeyRight):
			if st.Cursor < len(st.Runes) {
				st.Cursor++
			}
		case ctx.ConsumeKey(input.KeyHome):
			st.Cursor = 0
		case ctx.ConsumeKey(input.KeyEnd):
			st.Cursor = len(st.Runes)
		case ctx.ConsumeKey(input.KeyEscape):
			ctx.ClearFocus()
			focused = false
		}

		if r := ctx.Input().Rune; r >= ' ' && r != 0x7F {
			st.Runes = append(st.Runes[:st.Cursor],
				append([]rune{r}, st.Runes[st.Cursor:]...)...)
			st.Cursor++
			changed = true
		}
	}

	u.R.DrawBox(rect, 4, th.SurfaceContainerHighest)
	if focused {
		u.R.DrawOutline(rect, 4, 2, th.Primary)
	} else {
		u.R.DrawOutline(rect, 4, 1, th.Outline)
	}

	text := st.String()
	textY := rect.Top + (rect.Height()-u.Text.LineHeight())*0.5
	u.R.DrawText(geometry.Offset{X: textLeft, Y: textY}, text, th.OnSurface)

	if focused {
		caretX := textLeft + u.Text.TextWidth(string(st.Runes[:st.Cursor]))
		u.R.DrawBox(geometry.Rect{
			Left:   caretX,
			Top:    textY,
			Right:  caretX + 1,
			Bottom: textY + u.Text.LineHeight(),
		}, 0, th.Primary)
	}

	return changed
}

// cursorIndexAt maps a click x-coordinate to the nearest rune boundary.
func (u *UI) cursorIndexAt(st *TextState, textLeft, clickX float64) int {
	offset := clickX - textLeft
	if offset <= 0 {
		return 0
	}
	for i := 1; i <= len(st.Runes); i++ {
		if u.Text.TextWidth(string(st.Runes[:i])) > offset {
			return i - 1
		}
	}
	return len(st.Runes)
}
