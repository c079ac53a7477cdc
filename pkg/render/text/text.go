// Package text draws a laid-out tree as rows of ASCII glyphs.
//
// Every node occupies exactly its width in characters on the row of its
// depth, directly below its parent:
//
//	[....12....]
//	[.6..][.6..]
//	[3][3][][][]
//
// Width 1 is drawn as "1", width 2 as "[]", and wider nodes as their width
// in brackets padded with dots; when the padding is odd the extra dot goes to
// the right.
//
// Total widths grow with the LCM of the branching factors, so drawings are
// bounded: trees wider than the limit are refused instead of allocated.
package text

import (
	"strconv"
	"strings"

	errs "github.com/matzehuels/drehfreudig/pkg/errors"
	"github.com/matzehuels/drehfreudig/pkg/tree"
)

// DefaultMaxWidth is the widest tree [Render] draws.
const DefaultMaxWidth = 4096

const (
	unitGlyph = "1"
	pairGlyph = "[]"
	filler    = '.'
	blank     = ' '
)

// Glyph returns the drawing of a node of the given width. The result is
// exactly width characters long for width >= 1 and empty otherwise.
func Glyph(width int) string {
	switch {
	case width <= 0:
		return ""
	case width == 1:
		return unitGlyph
	case width == 2:
		return pairGlyph
	}
	num := strconv.Itoa(width)
	dots := max(width-len(num)-2, 0)
	left := dots / 2
	right := dots - left

	var b strings.Builder
	b.Grow(width)
	b.WriteByte('[')
	b.WriteString(strings.Repeat(string(filler), left))
	b.WriteString(num)
	b.WriteString(strings.Repeat(string(filler), right))
	b.WriteByte(']')
	return b.String()
}

// Render returns one line per tree level. Each line is exactly root.Width
// characters; cells below leaves that end early stay blank. It returns nil
// for a nil root, a tree that has not been laid out, or a tree wider than
// [DefaultMaxWidth].
func Render(root *tree.Node) []string {
	lines, _ := RenderWithLimit(root, DefaultMaxWidth)
	return lines
}

// RenderWithLimit is like [Render] but fails with
// [errs.ErrCodeRenderTooWide] when root is wider than maxWidth. A maxWidth
// of zero or less selects [DefaultMaxWidth].
func RenderWithLimit(root *tree.Node, maxWidth int) ([]string, error) {
	if root == nil || root.Width <= 0 {
		return nil, nil
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if root.Width > maxWidth {
		return nil, errs.New(errs.ErrCodeRenderTooWide, "tree is %d characters wide, limit is %d", root.Width, maxWidth)
	}

	rows := make([][]byte, root.Height())
	for i := range rows {
		rows[i] = []byte(strings.Repeat(string(blank), root.Width))
	}

	type frame struct {
		node   *tree.Node
		level  int
		offset int
	}
	stack := []frame{{root, 0, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		copy(rows[f.level][f.offset:], centered(Glyph(f.node.Width), f.node.Width))

		offset := f.offset
		for _, c := range f.node.Children {
			stack = append(stack, frame{c, f.level + 1, offset})
			offset += c.Width
		}
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = string(r)
	}
	return lines, nil
}

// String renders root and joins the lines with newlines.
func String(root *tree.Node) string {
	return strings.Join(Render(root), "\n")
}

// centered pads glyph with blanks to width, extra blank on the right.
func centered(glyph string, width int) string {
	pad := width - len(glyph)
	if pad <= 0 {
		return glyph
	}
	left := pad / 2
	return strings.Repeat(string(blank), left) + glyph + strings.Repeat(string(blank), pad-left)
}
