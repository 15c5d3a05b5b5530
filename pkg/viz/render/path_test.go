package render

import (
	"math"
	"testing"

	"github.com/blockscope/blockscope/pkg/viz/layout"
)

func TestEdgeCurve_Endpoints(t *testing.T) {
	from := layout.Rect{X: 0, Y: 0, W: 140, H: 60}
	to := layout.Rect{X: 300, Y: 200, W: 140, H: 60}

	c := EdgeCurve(from, to)

	if c.P0 != (layout.Point{X: 140, Y: 30}) {
		t.Errorf("P0 = %v, want source right-mid {140 30}", c.P0)
	}
	if c.P1 != (layout.Point{X: 300, Y: 230}) {
		t.Errorf("P1 = %v, want target left-mid {300 230}", c.P1)
	}

	// Control points sit at the horizontal midpoint, keeping each
	// endpoint's y.
	midX := (140.0 + 300.0) / 2
	if c.C1 != (layout.Point{X: midX, Y: 30}) {
		t.Errorf("C1 = %v, want {%v 30}", c.C1, midX)
	}
	if c.C2 != (layout.Point{X: midX, Y: 230}) {
		t.Errorf("C2 = %v, want {%v 230}", c.C2, midX)
	}
}

func TestCubic_At(t *testing.T) {
	c := Cubic{
		P0: layout.Point{X: 0, Y: 0},
		C1: layout.Point{X: 10, Y: 0},
		C2: layout.Point{X: 20, Y: 0},
		P1: layout.Point{X: 30, Y: 0},
	}

	if got := c.At(0); got != c.P0 {
		t.Errorf("At(0) = %v, want P0 %v", got, c.P0)
	}
	if got := c.At(1); got != c.P1 {
		t.Errorf("At(1) = %v, want P1 %v", got, c.P1)
	}
	// Uniformly spaced collinear control points trace the straight line.
	if got := c.At(0.5); math.Abs(got.X-15) > 1e-9 || got.Y != 0 {
		t.Errorf("At(0.5) = %v, want {15 0}", got)
	}
}

func TestCubic_Flatten(t *testing.T) {
	c := Cubic{P1: layout.Point{X: 10, Y: 0}}
	pts := c.Flatten(8)
	if len(pts) != 9 {
		t.Fatalf("Flatten(8) returned %d points, want 9", len(pts))
	}
	if pts[0] != c.P0 || pts[8] != c.P1 {
		t.Errorf("Flatten endpoints = %v, %v, want %v, %v", pts[0], pts[8], c.P0, c.P1)
	}
}

func TestDashSegments_StraightLine(t *testing.T) {
	pts := []layout.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}

	segs := DashSegments(pts, 5, 3)

	// Pattern period 8 over length 100: drawn runs start at 0, 8, ... 96.
	if len(segs) != 13 {
		t.Fatalf("DashSegments() returned %d segments, want 13", len(segs))
	}
	for i, s := range segs {
		wantStart := float64(i) * 8
		if math.Abs(s[0].X-wantStart) > 1e-6 {
			t.Errorf("segment %d starts at %v, want %v", i, s[0].X, wantStart)
		}
		wantLen := 5.0
		if i == len(segs)-1 {
			wantLen = 4.0 // clipped by the end of the path
		}
		if got := s[1].X - s[0].X; math.Abs(got-wantLen) > 1e-6 {
			t.Errorf("segment %d length = %v, want %v", i, got, wantLen)
		}
	}
}

func TestDashSegments_RestartsPerCall(t *testing.T) {
	pts := []layout.Point{{X: 0, Y: 0}, {X: 20, Y: 0}}

	first := DashSegments(pts, 5, 3)
	second := DashSegments(pts, 5, 3)

	if len(first) != len(second) {
		t.Fatalf("segment counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("segment %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
	if first[0][0] != (layout.Point{X: 0, Y: 0}) {
		t.Errorf("pattern does not start drawn at distance 0: %v", first[0][0])
	}
}

func TestDashSegments_Degenerate(t *testing.T) {
	if segs := DashSegments(nil, 5, 3); len(segs) != 0 {
		t.Errorf("DashSegments(nil) = %v, want empty", segs)
	}
	if segs := DashSegments([]layout.Point{{X: 1, Y: 1}}, 5, 3); len(segs) != 0 {
		t.Errorf("DashSegments(single point) = %v, want empty", segs)
	}
}

func TestDashSegments_SpansPolylineJoints(t *testing.T) {
	// A drawn run crossing a joint is split into two collinear pieces;
	// total drawn length must still follow the 5-on/3-off pattern.
	pts := []layout.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 16, Y: 0}}

	segs := DashSegments(pts, 5, 3)

	total := 0.0
	for _, s := range segs {
		total += math.Abs(s[1].X - s[0].X)
	}
	// Length 16 = 5 on + 3 off + 5 on + 3 off: 10 drawn.
	if math.Abs(total-10) > 1e-6 {
		t.Errorf("total drawn length = %v, want 10", total)
	}
}
