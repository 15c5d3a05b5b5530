package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blockscope/blockscope/pkg/viz/inspect"
)

var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleHint    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	stylePanel   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

// compose assembles header, diagram, inspector panel, and status line.
func (m *Model) compose() string {
	_, ch := m.canvasSize()

	header := styleHeader.Render("blockscope") + "  " +
		styleHint.Render("drag/arrows pan · wheel/+/- zoom · click select · g reload · r reset · q close")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.diagram(),
		" ",
		m.panel(ch),
	)

	return header + "\n" + body + "\n" + m.statusLine()
}

// panel renders the inspector column: node details for the hovered node,
// falling back to the selected node, falling back to a graph summary.
func (m *Model) panel(height int) string {
	var text string
	switch {
	case m.loadErr != nil:
		text = styleError.Render("Load failed") + "\n" + m.loadErr.Error()
	case m.data == nil:
		text = styleHint.Render("No data")
	default:
		id := m.state.HoveredID
		if id == "" {
			id = m.state.SelectedID
		}
		if n, ok := m.data.Node(id); ok {
			text = inspect.Describe(n, m.cycleNodes,
				m.data.OutgoingEdges(n.ID), m.data.IncomingEdges(n.ID))
		} else {
			text = m.summary()
		}
	}

	lines := strings.Split(text, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = padOrTrim(l, panelWidth)
	}
	return stylePanel.Render(strings.Join(lines, "\n"))
}

// summary describes the whole graph when nothing is hovered or selected.
func (m *Model) summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blocks: %d\n", len(m.data.Nodes))
	fmt.Fprintf(&sb, "Edges:  %d\n", len(m.data.Edges))
	if len(m.result.Cycles) > 0 {
		fmt.Fprintf(&sb, "%s\n", styleError.Render(fmt.Sprintf("Cycles: %d", len(m.result.Cycles))))
	}
	if len(m.result.Missing) > 0 {
		fmt.Fprintf(&sb, "%s\n", styleWarning.Render(fmt.Sprintf("Missing deps: %d", len(m.result.Missing))))
	}
	if len(m.result.Conflicts) > 0 {
		fmt.Fprintf(&sb, "%s\n", styleWarning.Render(fmt.Sprintf("Conflicts: %d", len(m.result.Conflicts))))
	}
	if !m.result.HasIssues() {
		sb.WriteString("No dependency issues\n")
	}
	sb.WriteString("\nHover a node for details")
	return sb.String()
}

func (m *Model) statusLine() string {
	snap := m.state.Snapshot()
	status := fmt.Sprintf("zoom %.0f%%  pan (%.0f, %.0f)", snap.Scale*100, snap.Pan.X, snap.Pan.Y)
	if snap.Selected != "" {
		status += "  selected: " + snap.Selected
	}
	return styleHint.Render(status)
}

// padOrTrim pads a line to w columns, measuring with lipgloss so ANSI
// sequences stay out of the count. Overlong plain lines are cut.
func padOrTrim(s string, w int) string {
	width := lipgloss.Width(s)
	if width > w {
		if width == len(s) { // plain ASCII, safe to slice
			return s[:w]
		}
		return s
	}
	return s + strings.Repeat(" ", w-width)
}
