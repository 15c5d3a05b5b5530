// Package render turns a graph frame into drawing commands.
//
// Render is a pure function of (nodes, edges, positions, camera,
// hover/selection, cycle membership): it emits commands onto a Surface and
// mutates nothing. Edges are drawn first, then nodes, so nodes always
// occlude edges. The camera transform is applied once per frame via
// Surface.SetTransform; all subsequent coordinates are world-space.
//
// A Recorder surface captures the command list, which is what tests and
// alternative sinks consume. The terminal sink lives in pkg/viz/viewer.
package render
