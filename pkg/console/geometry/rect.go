// Package geometry owns the console overlay rectangles and the drag/resize gestures that move them.
package geometry

// Vec is a point or a size in screen units
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle with a top-left origin
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Pos() Vec        { return Vec{r.X, r.Y} }
func (r Rect) Size() Vec       { return Vec{r.W, r.H} }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// WithPos returns r moved to p
func (r Rect) WithPos(p Vec) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
