// Package nodelink renders laid-out trees as node-link diagrams.
//
// # Overview
//
// The tree is drawn top to bottom with Graphviz: one box per node, one arrow
// per parent-child edge. Labels show the width assigned by the layout pass,
// so the proportional split is visible at every level. Leaves are filled.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: When true, labels carry both width and depth.
//
// # Node identifiers
//
// Nodes are named n0, n1, ... in pre-order, so the DOT output for a given
// bracket string is stable across runs.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no external Graphviz installation is needed.
package nodelink
