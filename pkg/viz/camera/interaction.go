package camera

import (
	"github.com/blockscope/blockscope/pkg/block"
	"github.com/blockscope/blockscope/pkg/viz/layout"
)

// State is the full interaction state feeding the renderer: the camera
// plus at most one hovered and one selected node. Hover and selection are
// independent and may reference the same or different nodes.
//
// State persists across data reloads; positions and nodes are passed into
// each transition rather than stored, so a reload never invalidates it.
type State struct {
	Camera     Camera
	HoveredID  string
	SelectedID string
}

// NewState returns interaction state with an identity camera and no
// hovered or selected node.
func NewState() State {
	return State{Camera: New()}
}

// Snapshot is the comparable subset of state that affects visual output.
// Two equal snapshots produce identical frames, so renderers may skip
// redrawing when the snapshot is unchanged.
type Snapshot struct {
	Pan      layout.Point
	Scale    float64
	Hovered  string
	Selected string
}

// Snapshot returns the current redraw-relevant state.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Pan:      s.Camera.Pan,
		Scale:    s.Camera.Scale,
		Hovered:  s.HoveredID,
		Selected: s.SelectedID,
	}
}

// HitTest returns the ID of the topmost node whose screen-space rectangle
// contains pt. Nodes are drawn in list order, so the last match wins.
// Nodes without a position are never hit.
func (s State) HitTest(pt layout.Point, nodes []block.Block, positions layout.PositionMap) (string, bool) {
	for i := len(nodes) - 1; i >= 0; i-- {
		pos, ok := positions[nodes[i].ID]
		if !ok {
			continue
		}
		if s.Camera.ScreenRect(layout.NodeRect(pos)).Contains(pt) {
			return nodes[i].ID, true
		}
	}
	return "", false
}

// HoverAt updates the hovered node from a pointer position in screen
// space. Pointing at empty space clears the hover.
func (s *State) HoverAt(pt layout.Point, nodes []block.Block, positions layout.PositionMap) {
	if id, ok := s.HitTest(pt, nodes, positions); ok {
		s.HoveredID = id
		return
	}
	s.HoveredID = ""
}

// TapAt toggles selection from a tap at a screen-space position.
// Tapping the selected node clears the selection; tapping another node
// replaces it; tapping empty space leaves the selection unchanged.
func (s *State) TapAt(pt layout.Point, nodes []block.Block, positions layout.PositionMap) {
	id, ok := s.HitTest(pt, nodes, positions)
	if !ok {
		return
	}
	s.Toggle(id)
}

// Toggle applies the selection toggle rule directly to a node ID.
func (s *State) Toggle(id string) {
	if s.SelectedID == id {
		s.SelectedID = ""
		return
	}
	s.SelectedID = id
}
