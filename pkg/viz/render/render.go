package render

import (
	"github.com/blockscope/blockscope/pkg/block"
	"github.com/blockscope/blockscope/pkg/viz/camera"
	"github.com/blockscope/blockscope/pkg/viz/layout"
)

// Rendering constants, in world units.
const (
	cornerRadius = 8.0

	edgeWidth      = 1.5
	cycleEdgeWidth = 2.5
	dashOnLength   = 5.0
	dashOffLength  = 3.0
	arrowSize      = 8.0

	glowInflate         = 4.0
	borderWidthDefault  = 1.5
	borderWidthHovered  = 2.0
	borderWidthSelected = 2.5

	badgeRadius = 7.0
	badgeInset  = 12.0
)

// Frame is everything Render reads: one immutable snapshot of graph data
// plus the live camera and interaction state.
type Frame struct {
	Nodes      []block.Block
	Edges      []block.Edge
	Positions  layout.PositionMap
	CycleNodes map[string]bool
	Camera     camera.Camera
	HoveredID  string
	SelectedID string
}

// Render draws the frame onto the surface: transform once, all edges, then
// all nodes. Elements without positions are skipped silently.
func Render(s Surface, f Frame) {
	s.SetTransform(f.Camera.Pan, f.Camera.Scale)

	for _, e := range f.Edges {
		renderEdge(s, f, e)
	}
	for _, n := range f.Nodes {
		renderNode(s, f, n)
	}
}

// =============================================================================
// Edges
// =============================================================================

// InCycle reports whether an edge participates in the cycle highlight: a
// requires edge with both endpoints in the cycle set.
func InCycle(e block.Edge, cycleNodes map[string]bool) bool {
	return e.Kind == block.EdgeRequires && cycleNodes[e.From] && cycleNodes[e.To]
}

func renderEdge(s Surface, f Frame, e block.Edge) {
	fromPos, ok := f.Positions[e.From]
	if !ok {
		return
	}
	toPos, ok := f.Positions[e.To]
	if !ok {
		return
	}

	curve := EdgeCurve(layout.NodeRect(fromPos), layout.NodeRect(toPos))

	color := EdgeColor(e.Kind)
	width := edgeWidth
	if InCycle(e, f.CycleNodes) {
		color = ColorRed
		width = cycleEdgeWidth
	}

	if e.Kind == block.EdgeEnables || e.Kind == block.EdgeModifies {
		// Dash pattern restarts at zero for every edge.
		pts := curve.Flatten(dashFlattenSegments)
		for _, seg := range DashSegments(pts, dashOnLength, dashOffLength) {
			s.StrokeLine(seg[0], seg[1], width, color)
		}
	} else {
		s.StrokeCubic(curve, width, color)
	}

	renderArrowhead(s, curve.P1, color)
}

// renderArrowhead draws the fixed-orientation arrowhead at the curve end.
// The triangle always points rightward regardless of the curve's tangent;
// this mirrors the tool's established look and is deliberate.
func renderArrowhead(s Surface, tip layout.Point, c Color) {
	back := tip.X - arrowSize
	s.FillTriangle(
		tip,
		layout.Point{X: back, Y: tip.Y - arrowSize/2},
		layout.Point{X: back, Y: tip.Y + arrowSize/2},
		c,
	)
}

// =============================================================================
// Nodes
// =============================================================================

func renderNode(s Surface, f Frame, n block.Block) {
	pos, ok := f.Positions[n.ID]
	if !ok {
		return
	}
	rect := layout.NodeRect(pos)

	inCycle := f.CycleNodes[n.ID]
	border := NodeBorderColor(n, inCycle)
	hovered := f.HoveredID == n.ID
	selected := f.SelectedID == n.ID

	if hovered || selected {
		s.GlowRect(rect.Inflate(glowInflate), cornerRadius, border)
	}

	s.FillRoundedRect(rect, cornerRadius, Tint(border))
	s.StrokeRoundedRect(rect, cornerRadius, borderWidth(hovered, selected), border)

	labelRect := layout.Rect{
		X: rect.X + labelPadding,
		Y: rect.Y,
		W: rect.W - 2*labelPadding,
		H: rect.H,
	}
	s.Text(labelRect, WrapLabel(n.DisplayName()), labelColor, !n.Enabled)

	renderBadge(s, rect, n, inCycle)
}

func borderWidth(hovered, selected bool) float64 {
	switch {
	case selected:
		return borderWidthSelected
	case hovered:
		return borderWidthHovered
	default:
		return borderWidthDefault
	}
}

// renderBadge draws at most one status badge in the top-right corner.
// Cycle membership takes precedence over the disabled marker.
func renderBadge(s Surface, rect layout.Rect, n block.Block, inCycle bool) {
	center := layout.Point{X: rect.X + rect.W - badgeInset, Y: rect.Y + badgeInset}
	switch {
	case inCycle:
		s.FillCircle(center, badgeRadius, ColorRed)
		s.Text(badgeRect(center), []string{badgeGlyphError}, colorWhite, false)
	case !n.Enabled:
		s.FillCircle(center, badgeRadius, ColorGrey)
		s.Text(badgeRect(center), []string{badgeGlyphHidden}, colorWhite, false)
	}
}

const (
	badgeGlyphError  = "!"
	badgeGlyphHidden = "×"
)

func badgeRect(center layout.Point) layout.Rect {
	return layout.Rect{
		X: center.X - badgeRadius,
		Y: center.Y - badgeRadius,
		W: 2 * badgeRadius,
		H: 2 * badgeRadius,
	}
}
