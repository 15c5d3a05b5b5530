package render

import (
	"math"

	"github.com/blockscope/blockscope/pkg/viz/layout"
)

// Cubic is a cubic Bézier curve.
type Cubic struct {
	P0, C1, C2, P1 layout.Point
}

// EdgeCurve builds the routing curve between two node rectangles: from the
// source's right-mid point to the target's left-mid point, with both
// control points at the horizontal midpoint, each keeping its endpoint's
// y. The result is a smooth horizontal S-curve regardless of vertical
// offset.
func EdgeCurve(from, to layout.Rect) Cubic {
	start := from.RightMid()
	end := to.LeftMid()
	midX := (start.X + end.X) / 2
	return Cubic{
		P0: start,
		C1: layout.Point{X: midX, Y: start.Y},
		C2: layout.Point{X: midX, Y: end.Y},
		P1: end,
	}
}

// At evaluates the curve at parameter t in [0, 1].
func (c Cubic) At(t float64) layout.Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return layout.Point{
		X: b0*c.P0.X + b1*c.C1.X + b2*c.C2.X + b3*c.P1.X,
		Y: b0*c.P0.Y + b1*c.C1.Y + b2*c.C2.Y + b3*c.P1.Y,
	}
}

// Flatten samples the curve into n line segments (n+1 points).
func (c Cubic) Flatten(n int) []layout.Point {
	if n < 1 {
		n = 1
	}
	pts := make([]layout.Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = c.At(float64(i) / float64(n))
	}
	return pts
}

// dashFlattenSegments is the sample count used when converting a curve
// into a dashable polyline.
const dashFlattenSegments = 24

// DashSegments walks a polyline emitting alternating drawn/skipped runs of
// fixed lengths. The pattern restarts at distance zero for each call, so
// there is no phase continuity across edges. Returned pairs are the drawn
// runs only.
func DashSegments(pts []layout.Point, on, off float64) [][2]layout.Point {
	var segs [][2]layout.Point
	if len(pts) < 2 || on <= 0 {
		return segs
	}

	drawing := true
	remaining := on
	cursor := pts[0]

	for i := 1; i < len(pts); i++ {
		target := pts[i]
		for {
			d := dist(cursor, target)
			if d < 1e-9 {
				break
			}
			if d <= remaining {
				if drawing {
					segs = append(segs, [2]layout.Point{cursor, target})
				}
				remaining -= d
				cursor = target
				break
			}
			// The current run ends partway along this segment.
			t := remaining / d
			split := layout.Point{
				X: cursor.X + (target.X-cursor.X)*t,
				Y: cursor.Y + (target.Y-cursor.Y)*t,
			}
			if drawing {
				segs = append(segs, [2]layout.Point{cursor, split})
			}
			cursor = split
			drawing = !drawing
			if drawing {
				remaining = on
			} else {
				remaining = off
			}
		}
		if remaining < 1e-9 {
			drawing = !drawing
			if drawing {
				remaining = on
			} else {
				remaining = off
			}
		}
	}
	return segs
}

func dist(a, b layout.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
