package resolver

import (
	"github.com/google/uuid"

	"github.com/blockscope/blockscope/pkg/block"
)

// VisualizationData is the renderer's input shape: the node list, the full
// edge list built from every declared dependency, and per-node edge
// indexes for the inspector.
//
// Data is a snapshot: it is rebuilt in full whenever the underlying block
// list changes. SnapshotID correlates log lines across one rebuild.
type VisualizationData struct {
	SnapshotID uuid.UUID
	Nodes      []block.Block
	Edges      []block.Edge

	incoming map[string][]block.Edge
	outgoing map[string][]block.Edge
}

// BuildVisualizationData converts a block list into the renderer's input
// shape. Edges referencing unknown blocks are kept - the renderer skips
// them when the endpoint has no position, and the resolver reports them as
// missing dependencies.
func BuildVisualizationData(blocks []block.Block) *VisualizationData {
	d := &VisualizationData{
		SnapshotID: uuid.New(),
		Nodes:      blocks,
		incoming:   make(map[string][]block.Edge),
		outgoing:   make(map[string][]block.Edge),
	}

	add := func(b block.Block, targets []string, kind block.EdgeKind) {
		for _, t := range targets {
			e := block.Edge{From: b.ID, To: t, Kind: kind}
			d.Edges = append(d.Edges, e)
			d.outgoing[b.ID] = append(d.outgoing[b.ID], e)
			d.incoming[t] = append(d.incoming[t], e)
		}
	}

	for _, b := range blocks {
		add(b, b.Requires, block.EdgeRequires)
		add(b, b.Enables, block.EdgeEnables)
		add(b, b.Modifies, block.EdgeModifies)
		add(b, b.Conflicts, block.EdgeConflicts)
	}
	return d
}

// OutgoingEdges returns the edges declared by the given block.
func (d *VisualizationData) OutgoingEdges(id string) []block.Edge {
	return d.outgoing[id]
}

// IncomingEdges returns the edges pointing at the given block.
func (d *VisualizationData) IncomingEdges(id string) []block.Edge {
	return d.incoming[id]
}

// Node returns the block with the given ID.
func (d *VisualizationData) Node(id string) (block.Block, bool) {
	return block.FindBlock(d.Nodes, id)
}
