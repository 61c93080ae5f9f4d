package render

import (
	"testing"

	"github.com/go-ember/ember/pkg/geometry"
)

func TestColorAccessors(t *testing.T) {
	c := RGBA8(0x11, 0x22, 0x33, 0x44)
	if c != Color(0x44112233) {
		t.Errorf("RGBA8 = %#x, want 0x44112233", c)
	}
	if c.Alpha() != 0x44 {
		t.Errorf("Alpha = %#x, want 0x44", c.Alpha())
	}
	if got := c.WithAlpha8(0xFF); got != Color(0xFF112233) {
		t.Errorf("WithAlpha8 = %#x", got)
	}
	if RGB(1, 2, 3).Alpha() != 0xFF {
		t.Error("RGB not opaque")
	}
}

func TestBlend(t *testing.T) {
	dst := RGB(0, 0, 0)
	if got := Blend(dst, Transparent); got != dst {
		t.Errorf("blending transparent changed dst to %#x", got)
	}
	opaque := RGB(0xFF, 0, 0)
	if got := Blend(dst, opaque); got != opaque {
		t.Errorf("blending opaque = %#x, want src", got)
	}
	// 50% white over black lands mid-gray.
	got := Blend(dst, RGBA8(0xFF, 0xFF, 0xFF, 0x80))
	r := uint8(got >> 16)
	if r < 0x7E || r > 0x82 {
		t.Errorf("half blend red channel = %#x, want ~0x80", r)
	}
	if got.Alpha() != 0xFF {
		t.Error("blend changed the destination alpha")
	}
}

func TestLerpColor(t *testing.T) {
	a, b := RGB(0, 0, 0), RGB(0xFF, 0xFF, 0xFF)
	if LerpColor(a, b, 0) != a || LerpColor(a, b, 1) != b {
		t.Error("LerpColor endpoints wrong")
	}
	mid := LerpColor(a, b, 0.5)
	if r := uint8(mid >> 16); r < 0x7E || r > 0x82 {
		t.Errorf("midpoint red = %#x, want ~0x80", r)
	}
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	rect := geometry.RectFromLTWH(0, 0, 10, 10)

	rec.DrawBox(rect, 2, RGB(1, 2, 3))
	rec.DrawOutline(rect, 2, 1, RGB(4, 5, 6))
	rec.DrawText(geometry.Offset{X: 1, Y: 1}, "hello", RGB(7, 8, 9))
	rec.SetClip(rect)

	if len(rec.Ops) != 4 {
		t.Fatalf("recorded %d ops, want 4", len(rec.Ops))
	}
	if !rec.HasText("hello") {
		t.Error("HasText missed the recorded text")
	}
	if rec.HasText("hell") {
		t.Error("HasText matched a substring")
	}
	if n := len(rec.TextOps()); n != 1 {
		t.Errorf("TextOps returned %d ops, want 1", n)
	}

	rec.Reset()
	if len(rec.Ops) != 0 {
		t.Error("Reset left recorded ops behind")
	}
}

func TestBasicMetrics(t *testing.T) {
	m := NewBasicMetrics()
	if m.LineHeight() <= 0 {
		t.Error("line height not positive")
	}
	if m.TextWidth("") != 0 {
		t.Error("empty string has non-zero width")
	}
	if m.TextWidth("ab") <= m.TextWidth("a") {
		t.Error("text width not monotonic in length")
	}
}
