// Package geometry provides the value types the interaction core reasons
// about: points, sizes, and rectangles in logical pixel coordinates.
//
// The core never computes layout. Every widget call receives an
// already-computed rectangle from its caller; this package only supplies
// the containment and expansion math needed for hit testing.
package geometry

import "math"

// Offset represents a 2D point or vector in logical pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty reports whether the rectangle has no positive area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether the point lies inside the rectangle.
// Points on the left/top edges are inside; right/bottom edges are not.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns the rectangle shifted by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Inset returns the rectangle shrunk by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Left:   r.Left + d,
		Top:    r.Top + d,
		Right:  r.Right - d,
		Bottom: r.Bottom - d,
	}
}

// ExpandedToMinSize grows the rectangle symmetrically around its center until
// both dimensions reach at least min. Used to widen small visual rects into
// comfortable touch targets without moving their centers.
func (r Rect) ExpandedToMinSize(min float64) Rect {
	out := r
	if w := r.Width(); w < min {
		grow := (min - w) * 0.5
		out.Left -= grow
		out.Right += grow
	}
	if h := r.Height(); h < min {
		grow := (min - h) * 0.5
		out.Top -= grow
		out.Bottom += grow
	}
	return out
}

// ExpandedToMinHeight grows only the vertical extent to at least min,
// keeping the horizontal bounds untouched.
func (r Rect) ExpandedToMinHeight(min float64) Rect {
	out := r
	if h := r.Height(); h < min {
		grow := (min - h) * 0.5
		out.Top -= grow
		out.Bottom += grow
	}
	return out
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
