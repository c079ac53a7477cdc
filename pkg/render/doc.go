// Package render provides visual output for laid-out trees.
//
// Both renderers read the Width (and, for node-link diagrams, Depth) fields
// written by [layout.Apply]; neither changes the tree.
//
//   - [text]: proportional ASCII rows, one per depth level
//   - [nodelink]: Graphviz DOT source and in-process SVG rendering
//
//	root, _ := tree.Parse("(()(()))")
//	layout.Apply(root)
//	for _, line := range text.Render(root) {
//	    fmt.Println(line)
//	}
//
// [layout.Apply]: github.com/matzehuels/drehfreudig/pkg/layout.Apply
// [text]: github.com/matzehuels/drehfreudig/pkg/render/text
// [nodelink]: github.com/matzehuels/drehfreudig/pkg/render/nodelink
package render
