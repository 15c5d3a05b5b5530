package layout

// Point is a 2D coordinate in world or screen space.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Rect is an axis-aligned rectangle with top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether pt lies inside the rectangle.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X && pt.X <= r.X+r.W && pt.Y >= r.Y && pt.Y <= r.Y+r.H
}

// Inflate grows the rectangle by d units on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// RightMid returns the midpoint of the right edge.
func (r Rect) RightMid() Point { return Point{X: r.X + r.W, Y: r.Y + r.H/2} }

// LeftMid returns the midpoint of the left edge.
func (r Rect) LeftMid() Point { return Point{X: r.X, Y: r.Y + r.H/2} }
