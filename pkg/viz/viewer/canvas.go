package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blockscope/blockscope/pkg/viz/layout"
	"github.com/blockscope/blockscope/pkg/viz/render"
)

// Cell metrics: how many screen units one terminal cell covers. Terminal
// cells are roughly twice as tall as wide, so the vertical factor is
// doubled to keep node boxes proportioned.
const (
	CellUnitsX = 10.0
	CellUnitsY = 20.0
)

type cell struct {
	ch rune
	fg string // hex color, empty for terminal default
	bg string
}

// canvas rasterizes render.Surface commands onto a terminal cell grid.
// World coordinates are transformed with the frame camera, then divided by
// the cell metrics to find the target cell.
type canvas struct {
	w, h  int
	cells []cell

	pan   layout.Point
	scale float64
}

var _ render.Surface = (*canvas)(nil)

func newCanvas(w, h int) *canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &canvas{w: w, h: h, scale: 1, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i].ch = ' '
	}
	return c
}

func (c *canvas) SetTransform(pan layout.Point, scale float64) {
	c.pan = pan
	c.scale = scale
}

// toCell maps a world point to a cell coordinate.
func (c *canvas) toCell(p layout.Point) (int, int) {
	screen := p.Scale(c.scale).Add(c.pan)
	return int(screen.X / CellUnitsX), int(screen.Y / CellUnitsY)
}

func (c *canvas) put(x, y int, ch rune, fg string) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	i := y*c.w + x
	c.cells[i].ch = ch
	c.cells[i].fg = fg
}

func (c *canvas) putBG(x, y int, bg string) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x].bg = bg
}

// cellRect returns the inclusive cell bounds of a world rectangle.
func (c *canvas) cellRect(r layout.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = c.toCell(layout.Point{X: r.X, Y: r.Y})
	x1, y1 = c.toCell(layout.Point{X: r.X + r.W, Y: r.Y + r.H})
	return
}

// =============================================================================
// Surface implementation
// =============================================================================

func (c *canvas) FillRoundedRect(r layout.Rect, _ float64, col render.Color) {
	x0, y0, x1, y1 := c.cellRect(r)
	hex := col.Hex()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.putBG(x, y, hex)
		}
	}
}

// Border rune sets. Rounded corners stand in for the 8-unit corner radius;
// the heavy set approximates the wider selected/hovered strokes.
var (
	thinBorder  = [6]rune{'─', '│', '╭', '╮', '╰', '╯'}
	heavyBorder = [6]rune{'━', '┃', '┏', '┓', '┗', '┛'}
)

func (c *canvas) StrokeRoundedRect(r layout.Rect, _ float64, width float64, col render.Color) {
	x0, y0, x1, y1 := c.cellRect(r)
	runes := thinBorder
	if width >= 2.5 {
		runes = heavyBorder
	}
	hex := col.Hex()
	for x := x0 + 1; x < x1; x++ {
		c.put(x, y0, runes[0], hex)
		c.put(x, y1, runes[0], hex)
	}
	for y := y0 + 1; y < y1; y++ {
		c.put(x0, y, runes[1], hex)
		c.put(x1, y, runes[1], hex)
	}
	c.put(x0, y0, runes[2], hex)
	c.put(x1, y0, runes[3], hex)
	c.put(x0, y1, runes[4], hex)
	c.put(x1, y1, runes[5], hex)
}

func (c *canvas) GlowRect(r layout.Rect, _ float64, col render.Color) {
	x0, y0, x1, y1 := c.cellRect(r)
	hex := render.Tint(col).Hex()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.putBG(x, y, hex)
		}
	}
}

func (c *canvas) StrokeCubic(curve render.Cubic, width float64, col render.Color) {
	pts := curve.Flatten(cubicCells)
	for i := 1; i < len(pts); i++ {
		c.StrokeLine(pts[i-1], pts[i], width, col)
	}
}

// cubicCells is the flattening resolution for solid curves on the grid.
const cubicCells = 32

func (c *canvas) StrokeLine(a, b layout.Point, width float64, col render.Color) {
	glyph := '·'
	if width >= 2.5 {
		glyph = '•'
	}
	hex := col.Hex()

	// Sample at half-cell granularity so no cell along the line is missed.
	steps := int(dist(a, b)*c.scale/(CellUnitsX/2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := layout.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		x, y := c.toCell(p)
		c.put(x, y, glyph, hex)
	}
}

func (c *canvas) FillTriangle(a, b, d layout.Point, col render.Color) {
	// A single glyph at the tip reads as an arrowhead at cell resolution.
	x, y := c.toCell(a)
	c.put(x, y, '▶', col.Hex())
}

func (c *canvas) FillCircle(center layout.Point, _ float64, col render.Color) {
	x, y := c.toCell(center)
	c.put(x, y, '●', col.Hex())
}

func (c *canvas) Text(r layout.Rect, lines []string, col render.Color, dim bool) {
	x0, y0, x1, y1 := c.cellRect(r)
	maxW := x1 - x0 + 1
	hex := col.Hex()
	if dim {
		hex = dimTextHex
	}

	midY := (y0 + y1) / 2
	startY := midY - (len(lines)-1)/2
	for li, line := range lines {
		runes := []rune(line)
		if len(runes) > maxW {
			runes = runes[:maxW]
		}
		startX := x0 + (maxW-len(runes))/2
		for i, ch := range runes {
			c.put(startX+i, startY+li, ch, hex)
		}
	}
}

const dimTextHex = "#6b7078"

// =============================================================================
// Output
// =============================================================================

// String renders the grid with lipgloss styling, grouping runs of cells
// that share colors to keep the escape-sequence volume down.
func (c *canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		var run strings.Builder
		var fg, bg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle()
			if fg != "" {
				style = style.Foreground(lipgloss.Color(fg))
			}
			if bg != "" {
				style = style.Background(lipgloss.Color(bg))
			}
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if cl.fg != fg || cl.bg != bg {
				flush()
				fg, bg = cl.fg, cl.bg
			}
			run.WriteRune(cl.ch)
		}
		flush()
		if y < c.h-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func dist(a, b layout.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx + dy/2
	}
	return dy + dx/2
}
