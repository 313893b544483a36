package gamemath

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports a strict intersection; boxes that only share an edge do
// not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Grow expands (positive) or shrinks (negative) the box on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// BoxAt returns the box of a sprite of size w×h drawn at scale, anchored at
// its bottom center (x, y).
func BoxAt(x, y, w, h, scale float64) Rect {
	sw, sh := w*scale, h*scale
	return Rect{X: x - sw/2, Y: y - sh, W: sw, H: sh}
}

// CenteredBox returns a w×h box centered on (x, y).
func CenteredBox(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}
