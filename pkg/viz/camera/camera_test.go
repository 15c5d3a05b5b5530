package camera

import (
	"testing"

	"github.com/blockscope/blockscope/pkg/block"
	"github.com/blockscope/blockscope/pkg/viz/layout"
)

func TestCamera_ZoomByClamps(t *testing.T) {
	c := New()

	c.ZoomBy(100)
	if c.Scale != MaxScale {
		t.Errorf("Scale after huge zoom-in = %v, want %v", c.Scale, MaxScale)
	}

	c.ZoomBy(0.0001)
	if c.Scale != MinScale {
		t.Errorf("Scale after huge zoom-out = %v, want %v", c.Scale, MinScale)
	}
}

func TestCamera_ZoomStepClamps(t *testing.T) {
	c := New()
	for i := 0; i < 50; i++ {
		c.ZoomStep(+1)
	}
	if c.Scale != MaxScale {
		t.Errorf("Scale after 50 steps in = %v, want %v", c.Scale, MaxScale)
	}
	for i := 0; i < 50; i++ {
		c.ZoomStep(-1)
	}
	if c.Scale != MinScale {
		t.Errorf("Scale after 50 steps out = %v, want %v", c.Scale, MinScale)
	}
}

func TestCamera_Reset(t *testing.T) {
	c := New()
	c.PanBy(123, -456)
	c.ZoomBy(1.7)

	c.Reset()

	if c.Pan != (layout.Point{}) {
		t.Errorf("Pan after Reset = %v, want origin", c.Pan)
	}
	if c.Scale != 1.0 {
		t.Errorf("Scale after Reset = %v, want 1.0", c.Scale)
	}
}

func TestCamera_PanUnbounded(t *testing.T) {
	c := New()
	c.PanBy(-1e9, 1e9)
	if c.Pan.X != -1e9 || c.Pan.Y != 1e9 {
		t.Errorf("Pan = %v, want {-1e9 1e9}", c.Pan)
	}
}

func TestCamera_ToScreen(t *testing.T) {
	c := Camera{Pan: layout.Point{X: 10, Y: 20}, Scale: 2}
	got := c.ToScreen(layout.Point{X: 5, Y: 5})
	want := layout.Point{X: 20, Y: 30}
	if got != want {
		t.Errorf("ToScreen() = %v, want %v", got, want)
	}
}

func TestState_SelectionToggle(t *testing.T) {
	s := NewState()

	s.Toggle("a")
	if s.SelectedID != "a" {
		t.Errorf("SelectedID = %q, want %q", s.SelectedID, "a")
	}

	// Selecting the selected node clears the selection.
	s.Toggle("a")
	if s.SelectedID != "" {
		t.Errorf("SelectedID after re-toggle = %q, want empty", s.SelectedID)
	}

	// Selecting a different node replaces the selection.
	s.Toggle("a")
	s.Toggle("b")
	if s.SelectedID != "b" {
		t.Errorf("SelectedID = %q, want %q", s.SelectedID, "b")
	}
}

func testNodes() ([]block.Block, layout.PositionMap) {
	nodes := []block.Block{
		{ID: "a", Category: block.CategoryCore, Enabled: true},
		{ID: "b", Category: block.CategoryFeature, Enabled: true},
	}
	return nodes, layout.Layout(nodes) // a at (50,50), b at (230,50)
}

func TestState_HitTestUsesTransform(t *testing.T) {
	nodes, positions := testNodes()
	s := NewState()
	s.Camera.Pan = layout.Point{X: 100, Y: 0}
	s.Camera.Scale = 2

	// Node "a" world rect (50,50,140,60) maps to screen (200,100,280,120).
	if id, ok := s.HitTest(layout.Point{X: 210, Y: 110}, nodes, positions); !ok || id != "a" {
		t.Errorf("HitTest(transformed point) = %q, %v, want \"a\", true", id, ok)
	}

	// The raw world point must not hit once the camera moved.
	if id, ok := s.HitTest(layout.Point{X: 60, Y: 55}, nodes, positions); ok {
		t.Errorf("HitTest(world point) = %q, want miss", id)
	}
}

func TestState_HitTestSkipsUnpositioned(t *testing.T) {
	nodes := []block.Block{{ID: "ghost", Category: block.CategoryCore}}
	s := NewState()
	if id, ok := s.HitTest(layout.Point{X: 0, Y: 0}, nodes, layout.PositionMap{}); ok {
		t.Errorf("HitTest() = %q, want miss for unpositioned node", id)
	}
}

func TestState_HoverAt(t *testing.T) {
	nodes, positions := testNodes()
	s := NewState()

	s.HoverAt(layout.Point{X: 60, Y: 60}, nodes, positions)
	if s.HoveredID != "a" {
		t.Errorf("HoveredID = %q, want %q", s.HoveredID, "a")
	}

	// Empty space clears the hover.
	s.HoverAt(layout.Point{X: 1000, Y: 1000}, nodes, positions)
	if s.HoveredID != "" {
		t.Errorf("HoveredID after miss = %q, want empty", s.HoveredID)
	}
}

func TestState_TapAt(t *testing.T) {
	nodes, positions := testNodes()
	s := NewState()

	s.TapAt(layout.Point{X: 60, Y: 60}, nodes, positions)
	if s.SelectedID != "a" {
		t.Errorf("SelectedID = %q, want %q", s.SelectedID, "a")
	}

	// Tapping empty space leaves the selection unchanged.
	s.TapAt(layout.Point{X: 1000, Y: 1000}, nodes, positions)
	if s.SelectedID != "a" {
		t.Errorf("SelectedID after empty tap = %q, want %q", s.SelectedID, "a")
	}
}

func TestState_HoverAndSelectionIndependent(t *testing.T) {
	nodes, positions := testNodes()
	s := NewState()

	s.TapAt(layout.Point{X: 60, Y: 60}, nodes, positions)    // select a
	s.HoverAt(layout.Point{X: 240, Y: 60}, nodes, positions) // hover b

	if s.SelectedID != "a" || s.HoveredID != "b" {
		t.Errorf("state = {selected %q, hovered %q}, want {a, b}", s.SelectedID, s.HoveredID)
	}
}

func TestSnapshot_Equality(t *testing.T) {
	s := NewState()
	before := s.Snapshot()

	if s.Snapshot() != before {
		t.Error("identical state produced unequal snapshots")
	}

	s.Camera.PanBy(1, 0)
	if s.Snapshot() == before {
		t.Error("pan change did not change the snapshot")
	}

	s.Camera.PanBy(-1, 0)
	if s.Snapshot() != before {
		t.Error("restored state should produce an equal snapshot")
	}
}
