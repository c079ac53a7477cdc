// Package tree provides the ordered rooted tree behind a bracket string and
// the parser that builds it.
//
// # Grammar
//
// A tree is written as a fully parenthesized string. Every "(" opens a node,
// every ")" closes the most recently opened one, and nodes opened while
// another node is open become its children in left-to-right order:
//
//	()          a single node
//	(()())      a root with two leaf children
//	(()(()))    a root whose second child has one child
//
// Only brackets are significant. Whitespace, digits or any other characters
// are skipped, so "( () () )" and "(a()b())" describe the same tree.
//
// # Parsing
//
// [Parse] scans the input once with an explicit stack of open nodes; it never
// recurses, so the native call stack does not grow with nesting depth. Input
// without any bracket yields a nil root and a nil error ("no tree").
// Unbalanced input fails fast with an error coded
// [github.com/matzehuels/drehfreudig/pkg/errors.ErrCodeMalformedTree]:
//
//   - a ")" with no open node
//   - a "(" still open at the end of the input
//   - a second top-level "(" after the root has been closed
//
// [ParseWithLimit] additionally rejects nesting deeper than a caller-chosen
// bound.
//
// # Layout fields
//
// [Node.Width] and [Node.Depth] stay zero after parsing. They are filled in
// once by the layout package and are read by the evaluator and renderers.
package tree
