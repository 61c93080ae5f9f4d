// Package render defines the narrow contract surface between the
// interaction core and whatever rasterizes it.
//
// The engine itself emits no pixels: widgets consume a Renderer only to
// visualize their classified state, and a TextMetrics only to size labels.
// The package also ships a recording Renderer and a basicfont-backed
// TextMetrics so the whole stack runs headless in tests and the demo CLI.
package render

import (
	"math"

	"github.com/go-ember/ember/pkg/geometry"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Transparent is the fully transparent color. Widgets use it to mean
// "no background".
const Transparent = Color(0)

// Alpha returns the alpha byte.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// WithAlpha8 returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// StateLayer returns the color reduced to a translucent overlay with the
// given alpha byte, for hover/focus/press state layers over a base fill.
func StateLayer(c Color, alpha uint8) Color {
	return c.WithAlpha8(alpha)
}

// Blend composites src over dst using the source alpha.
func Blend(dst, src Color) Color {
	sa := float64(src.Alpha()) / maxByte
	if sa <= 0 {
		return dst
	}
	if sa >= 1 {
		return src
	}
	blend := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-sa) + float64(s)*sa))
	}
	return RGBA8(
		blend(uint8(dst>>16), uint8(src>>16)),
		blend(uint8(dst>>8), uint8(src>>8)),
		blend(uint8(dst), uint8(src)),
		dst.Alpha(),
	)
}

// LerpColor interpolates between two colors by t in [0, 1], per channel.
func LerpColor(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGBA8(
		lerp(uint8(a>>16), uint8(b>>16)),
		lerp(uint8(a>>8), uint8(b>>8)),
		lerp(uint8(a), uint8(b)),
		lerp(a.Alpha(), b.Alpha()),
	)
}

// Renderer is the drawing surface consumed by the widget layer. A corner
// radius of half the rect height produces a pill; zero produces a sharp
// box.
type Renderer interface {
	// DrawBox fills a rounded rectangle.
	DrawBox(r geometry.Rect, corner float64, color Color)
	// DrawOutline strokes a rounded rectangle with the given line width.
	DrawOutline(r geometry.Rect, corner, width float64, color Color)
	// DrawText draws a single line of text with its top-left at pos.
	DrawText(pos geometry.Offset, text string, color Color)
	// SetClip restricts subsequent drawing to the rect.
	SetClip(r geometry.Rect)
}

// TextMetrics measures text for the widget layer. Glyph rendering itself is
// the Renderer's concern.
type TextMetrics interface {
	// TextWidth returns the advance width of a single line of text.
	TextWidth(s string) float64
	// LineHeight returns the line height of the face.
	LineHeight() float64
}
