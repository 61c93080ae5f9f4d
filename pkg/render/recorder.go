package render

import "github.com/go-ember/ember/pkg/geometry"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	// OpBox is a filled rounded rectangle.
	OpBox OpKind = iota
	// OpOutline is a stroked rounded rectangle.
	OpOutline
	// OpText is a line of text.
	OpText
	// OpClip is a clip change.
	OpClip
)

// Op is one recorded drawing operation.
type Op struct {
	Kind   OpKind
	Rect   geometry.Rect
	Corner float64
	Width  float64
	Pos    geometry.Offset
	Text   string
	Color  Color
}

// Recorder is a Renderer that records operations instead of drawing them.
// Tests and the headless demo inspect the recorded list to assert what the
// widget layer would have drawn.
type Recorder struct {
	Ops []Op
}

// DrawBox records a filled rounded rectangle.
func (r *Recorder) DrawBox(rect geometry.Rect, corner float64, color Color) {
	r.Ops = append(r.Ops, Op{Kind: OpBox, Rect: rect, Corner: corner, Color: color})
}

// DrawOutline records a stroked rounded rectangle.
func (r *Recorder) DrawOutline(rect geometry.Rect, corner, width float64, color Color) {
	r.Ops = append(r.Ops, Op{Kind: OpOutline, Rect: rect, Corner: corner, Width: width, Color: color})
}

// DrawText records a line of text.
func (r *Recorder) DrawText(pos geometry.Offset, text string, color Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Pos: pos, Text: text, Color: color})
}

// SetClip records a clip change.
func (r *Recorder) SetClip(rect geometry.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpClip, Rect: rect})
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// TextOps returns the recorded text operations in order.
func (r *Recorder) TextOps() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}
	return out
}

// HasText reports whether a text operation with exactly s was recorded.
func (r *Recorder) HasText(s string) bool {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == s {
			return true
		}
	}
	return false
}
