package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BasicMetrics measures text against the fixed basicfont face. It backs the
// headless test and demo paths; real hosts plug in their own TextMetrics
// over their text stack.
type BasicMetrics struct {
	face font.Face
}

// NewBasicMetrics returns metrics over the built-in 7x13 face.
func NewBasicMetrics() *BasicMetrics {
	return &BasicMetrics{face: basicfont.Face7x13}
}

// TextWidth returns the advance width of s in pixels.
func (m *BasicMetrics) TextWidth(s string) float64 {
	return fixedToFloat(font.MeasureString(m.face, s))
}

// LineHeight returns the face's line height in pixels.
func (m *BasicMetrics) LineHeight() float64 {
	return fixedToFloat(m.face.Metrics().Height)
}

// fixedToFloat converts a 26.6 fixed-point value to pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
