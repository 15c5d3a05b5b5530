package render

import (
	"github.com/blockscope/blockscope/pkg/viz/layout"
)

// Surface receives drawing commands from Render. Implementations decide
// how to rasterize them; the transform set via SetTransform applies to all
// subsequent coordinates, which are world-space.
type Surface interface {
	// SetTransform applies the camera for the whole frame:
	// screen = world*scale + pan.
	SetTransform(pan layout.Point, scale float64)

	// FillRoundedRect fills a rounded rectangle.
	FillRoundedRect(r layout.Rect, radius float64, c Color)
	// StrokeRoundedRect strokes a rounded rectangle outline.
	StrokeRoundedRect(r layout.Rect, radius, width float64, c Color)
	// GlowRect draws a soft blurred halo filling r.
	GlowRect(r layout.Rect, radius float64, c Color)

	// StrokeCubic strokes a solid cubic Bézier curve.
	StrokeCubic(curve Cubic, width float64, c Color)
	// StrokeLine strokes a straight segment (dash runs, approximations).
	StrokeLine(a, b layout.Point, width float64, c Color)
	// FillTriangle fills the triangle a-b-c (arrowheads).
	FillTriangle(a, b, c layout.Point, col Color)
	// FillCircle fills a circle (status badges).
	FillCircle(center layout.Point, radius float64, c Color)

	// Text draws centered label lines inside r. dim renders the text
	// at reduced opacity.
	Text(r layout.Rect, lines []string, c Color, dim bool)
}

// =============================================================================
// Recorder - command-list Surface for tests and sinks
// =============================================================================

// Op is a recorded drawing command.
type Op interface{ op() }

// TransformOp records SetTransform.
type TransformOp struct {
	Pan   layout.Point
	Scale float64
}

// FillRectOp records FillRoundedRect.
type FillRectOp struct {
	Rect   layout.Rect
	Radius float64
	Color  Color
}

// StrokeRectOp records StrokeRoundedRect.
type StrokeRectOp struct {
	Rect          layout.Rect
	Radius, Width float64
	Color         Color
}

// GlowOp records GlowRect.
type GlowOp struct {
	Rect   layout.Rect
	Radius float64
	Color  Color
}

// CubicOp records StrokeCubic.
type CubicOp struct {
	Curve Cubic
	Width float64
	Color Color
}

// LineOp records StrokeLine.
type LineOp struct {
	A, B  layout.Point
	Width float64
	Color Color
}

// TriangleOp records FillTriangle.
type TriangleOp struct {
	A, B, C layout.Point
	Color   Color
}

// CircleOp records FillCircle.
type CircleOp struct {
	Center layout.Point
	Radius float64
	Color  Color
}

// TextOp records Text.
type TextOp struct {
	Rect  layout.Rect
	Lines []string
	Color Color
	Dim   bool
}

func (TransformOp) op()  {}
func (FillRectOp) op()   {}
func (StrokeRectOp) op() {}
func (GlowOp) op()       {}
func (CubicOp) op()      {}
func (LineOp) op()       {}
func (TriangleOp) op()   {}
func (CircleOp) op()     {}
func (TextOp) op()       {}

// Recorder is a Surface that appends every command to Ops.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) SetTransform(pan layout.Point, scale float64) {
	r.Ops = append(r.Ops, TransformOp{Pan: pan, Scale: scale})
}

func (r *Recorder) FillRoundedRect(rect layout.Rect, radius float64, c Color) {
	r.Ops = append(r.Ops, FillRectOp{Rect: rect, Radius: radius, Color: c})
}

func (r *Recorder) StrokeRoundedRect(rect layout.Rect, radius, width float64, c Color) {
	r.Ops = append(r.Ops, StrokeRectOp{Rect: rect, Radius: radius, Width: width, Color: c})
}

func (r *Recorder) GlowRect(rect layout.Rect, radius float64, c Color) {
	r.Ops = append(r.Ops, GlowOp{Rect: rect, Radius: radius, Color: c})
}

func (r *Recorder) StrokeCubic(curve Cubic, width float64, c Color) {
	r.Ops = append(r.Ops, CubicOp{Curve: curve, Width: width, Color: c})
}

func (r *Recorder) StrokeLine(a, b layout.Point, width float64, c Color) {
	r.Ops = append(r.Ops, LineOp{A: a, B: b, Width: width, Color: c})
}

func (r *Recorder) FillTriangle(a, b, c layout.Point, col Color) {
	r.Ops = append(r.Ops, TriangleOp{A: a, B: b, C: c, Color: col})
}

func (r *Recorder) FillCircle(center layout.Point, radius float64, c Color) {
	r.Ops = append(r.Ops, CircleOp{Center: center, Radius: radius, Color: c})
}

func (r *Recorder) Text(rect layout.Rect, lines []string, c Color, dim bool) {
	r.Ops = append(r.Ops, TextOp{Rect: rect, Lines: lines, Color: c, Dim: dim})
}
