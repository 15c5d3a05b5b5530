// Package viewer presents the dependency diagram as a self-contained
// full-screen modal in the terminal.
//
// Show blocks until the user closes the view and returns no output value.
// The diagram is interactive: mouse motion hovers nodes, clicking toggles
// selection, dragging pans, the wheel zooms, and the keyboard mirrors all
// camera gestures. Graph data is rebuilt in full on each reload while
// camera and selection state persist.
package viewer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/blockscope/blockscope/pkg/block"
	"github.com/blockscope/blockscope/pkg/resolver"
	"github.com/blockscope/blockscope/pkg/viz/camera"
	"github.com/blockscope/blockscope/pkg/viz/layout"
	"github.com/blockscope/blockscope/pkg/viz/render"
)

// Provider supplies the current block list. It is called once on open and
// again on every reload gesture.
type Provider func() ([]block.Block, error)

// Show opens the diagram modal and blocks until it is closed.
func Show(provider Provider, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	m := newModel(provider, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("diagram view: %w", err)
	}
	return nil
}

// =============================================================================
// Model
// =============================================================================

const (
	panelWidth = 32
	headerRows = 1
	footerRows = 1

	panStep         = 30.0 // screen units per arrow key press
	wheelZoomFactor = 1.1
)

// Model is the bubbletea model for the diagram modal. Exported so the CLI
// can embed the viewer in tests; construct it through Show in normal use.
type Model struct {
	provider Provider
	logger   *log.Logger

	data       *resolver.VisualizationData
	result     resolver.Result
	cycleNodes map[string]bool
	positions  layout.PositionMap
	loadErr    error

	state  camera.State
	width  int
	height int

	// Drag-to-pan bookkeeping.
	dragging  bool
	dragMoved bool
	lastDrag  layout.Point

	// Redraw suppression: the rasterized diagram is reused while the
	// redraw-relevant state is unchanged.
	cached    string
	cachedFor frameKey
}

type frameKey struct {
	snap     camera.Snapshot
	w, h     int
	snapshot string // data snapshot ID; changes on reload
}

func newModel(provider Provider, logger *log.Logger) *Model {
	m := &Model{
		provider: provider,
		logger:   logger,
		state:    camera.NewState(),
	}
	m.reload()
	return m
}

// reload rebuilds nodes, edges, cycles, and positions from the provider.
// Camera, hover, and selection deliberately survive the rebuild.
func (m *Model) reload() {
	blocks, err := m.provider()
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.data = resolver.BuildVisualizationData(blocks)
	m.result = resolver.Resolve(blocks)
	m.cycleNodes = resolver.CycleNodeSet(m.result.Cycles)
	m.positions = layout.Layout(blocks)
	m.logger.Debug("rebuilt graph snapshot",
		"snapshot", m.data.SnapshotID,
		"nodes", len(m.data.Nodes),
		"edges", len(m.data.Edges),
		"cycles", len(m.result.Cycles))
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.state.Camera.PanBy(panStep, 0)
	case "right", "l":
		m.state.Camera.PanBy(-panStep, 0)
	case "up", "k":
		m.state.Camera.PanBy(0, panStep)
	case "down", "j":
		m.state.Camera.PanBy(0, -panStep)
	case "+", "=":
		m.state.Camera.ZoomStep(+1)
	case "-", "_":
		m.state.Camera.ZoomStep(-1)
	case "r":
		m.state.Camera.Reset()
	case "g":
		m.reload()
	case "enter", " ":
		if m.state.HoveredID != "" {
			m.state.Toggle(m.state.HoveredID)
		}
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	pt, onCanvas := m.screenPoint(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.state.Camera.ZoomBy(wheelZoomFactor)
	case msg.Button == tea.MouseButtonWheelDown:
		m.state.Camera.ZoomBy(1 / wheelZoomFactor)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.dragMoved = false
		m.lastDrag = pt

	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.state.Camera.PanBy(pt.X-m.lastDrag.X, pt.Y-m.lastDrag.Y)
		m.lastDrag = pt
		m.dragMoved = true

	case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
		wasClick := m.dragging && !m.dragMoved
		m.dragging = false
		if wasClick && onCanvas && m.data != nil {
			m.state.TapAt(pt, m.data.Nodes, m.positions)
		}

	case msg.Action == tea.MouseActionMotion:
		if onCanvas && m.data != nil {
			m.state.HoverAt(pt, m.data.Nodes, m.positions)
		} else {
			m.state.HoveredID = ""
		}
	}
}

// screenPoint converts a terminal cell coordinate into the diagram's
// screen space (the space hit-testing operates in), using the cell center.
func (m *Model) screenPoint(x, y int) (layout.Point, bool) {
	cw, ch := m.canvasSize()
	cx, cy := x, y-headerRows
	pt := layout.Point{
		X: (float64(cx) + 0.5) * CellUnitsX,
		Y: (float64(cy) + 0.5) * CellUnitsY,
	}
	return pt, cx >= 0 && cx < cw && cy >= 0 && cy < ch
}

func (m *Model) canvasSize() (w, h int) {
	w = m.width - panelWidth - 1
	h = m.height - headerRows - footerRows
	if w < 10 {
		w = 10
	}
	if h < 5 {
		h = 5
	}
	return w, h
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	return m.compose()
}

// diagram rasterizes the current frame, reusing the cached output when the
// redraw-relevant state has not changed.
func (m *Model) diagram() string {
	cw, ch := m.canvasSize()
	key := frameKey{snap: m.state.Snapshot(), w: cw, h: ch}
	if m.data != nil {
		key.snapshot = m.data.SnapshotID.String()
	}
	if m.cached != "" && key == m.cachedFor {
		return m.cached
	}

	cv := newCanvas(cw, ch)
	if m.data != nil {
		render.Render(cv, render.Frame{
			Nodes:      m.data.Nodes,
			Edges:      m.data.Edges,
			Positions:  m.positions,
			CycleNodes: m.cycleNodes,
			Camera:     m.state.Camera,
			HoveredID:  m.state.HoveredID,
			SelectedID: m.state.SelectedID,
		})
	}
	m.cached = cv.String()
	m.cachedFor = key
	return m.cached
}
