// Package pkg provides the core libraries for drehfreudig tree checking.
//
// # Overview
//
// A tree written as nested brackets, such as "(()())", is drehfreudig
// when its proportional drawing looks the same after a half turn. Every node
// splits its width evenly between its children; the tree passes when the leaf
// widths read as a palindrome and the depths of mirrored leaves always add up
// to the same sum.
//
// The pkg directory is organized into three areas:
//
//  1. Core: [tree], [layout] and [drehfreudig] (pure, no I/O, no logging)
//  2. Presentation: [render/text] and [render/nodelink]
//  3. Infrastructure: [pipeline], [config], [errors], [observability] and
//     [buildinfo]
//
// # Architecture
//
// The data flow for one input:
//
//	bracket string
//	     ↓
//	[tree] package (parse into an ordered tree)
//	     ↓
//	[layout] package (widths via LCM of branching factors, depths)
//	     ↓
//	[drehfreudig] package (palindrome and depth-sum checks)
//	     ↓
//	Result (+ optional text, DOT or SVG drawing)
//
// [pipeline] runs this flow over a directory of input files and collects one
// report per file.
//
// # Quick Start
//
//	res, err := drehfreudig.Check("((()())())")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.LeafWidths, res.IsDrehfreudig) // [1 1 2] false
//
// [tree]: github.com/matzehuels/drehfreudig/pkg/tree
// [layout]: github.com/matzehuels/drehfreudig/pkg/layout
// [drehfreudig]: github.com/matzehuels/drehfreudig/pkg/drehfreudig
// [render/text]: github.com/matzehuels/drehfreudig/pkg/render/text
// [render/nodelink]: github.com/matzehuels/drehfreudig/pkg/render/nodelink
// [pipeline]: github.com/matzehuels/drehfreudig/pkg/pipeline
// [config]: github.com/matzehuels/drehfreudig/pkg/config
// [errors]: github.com/matzehuels/drehfreudig/pkg/errors
// [observability]: github.com/matzehuels/drehfreudig/pkg/observability
// [buildinfo]: github.com/matzehuels/drehfreudig/pkg/buildinfo
package pkg
