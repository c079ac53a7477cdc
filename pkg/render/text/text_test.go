package text

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/drehfreudig/pkg/errors"
	"github.com/matzehuels/drehfreudig/pkg/layout"
	"github.com/matzehuels/drehfreudig/pkg/tree"
)

func laidOut(t *testing.T, input string) *tree.Node {
	t.Helper()
	root, err := tree.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	if _, err := layout.Apply(root); err != nil {
		t.Fatalf("Apply(%q) error: %v", input, err)
	}
	return root
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{0, ""},
		{1, "1"},
		{2, "[]"},
		{3, "[3]"},
		{4, "[4.]"},
		{5, "[.5.]"},
		{6, "[.6..]"},
		{10, "[...10...]"},
		{12, "[....12....]"},
		{13, "[....13.....]"},
	}
	for _, tt := range tests {
		got := Glyph(tt.width)
		if got != tt.want {
			t.Errorf("Glyph(%d) = %q, want %q", tt.width, got, tt.want)
		}
		if len(got) != max(tt.width, 0) {
			t.Errorf("len(Glyph(%d)) = %d", tt.width, len(got))
		}
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"()", []string{"1"}},
		{"(()())", []string{"[]", "11"}},
		{"(()(()))", []string{"[]", "11", " 1"}},
		{"((()())())", []string{"[4.]", "[][]", "11  "}},
		{"((()())(()()()))", []string{
			"[....12....]",
			"[.6..][.6..]",
			"[3][3][][][]",
		}},
	}
	for _, tt := range tests {
		got := Render(laidOut(t, tt.input))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Render(%s) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestRenderLinesSpanTotalWidth(t *testing.T) {
	root := laidOut(t, "(((()()())(()))(()()()()()))")
	for i, line := range Render(root) {
		if len(line) != root.Width {
			t.Errorf("line %d has length %d, want %d", i, len(line), root.Width)
		}
	}
}

func TestRenderWithoutLayout(t *testing.T) {
	if got := Render(nil); got != nil {
		t.Errorf("Render(nil) = %v, want nil", got)
	}
	root, _ := tree.Parse("(()())")
	if got := Render(root); got != nil {
		t.Errorf("Render(unlaid) = %v, want nil", got)
	}
}

func TestRenderWithLimit(t *testing.T) {
	root := laidOut(t, "((()())(()()()))") // 12 wide

	lines, err := RenderWithLimit(root, 12)
	if err != nil {
		t.Fatalf("RenderWithLimit(12) error: %v", err)
	}
	if len(lines) != 3 {
		t.Errorf("RenderWithLimit(12) = %v, want 3 lines", lines)
	}

	lines, err = RenderWithLimit(root, 11)
	if !errs.Is(err, errs.ErrCodeRenderTooWide) {
		t.Errorf("RenderWithLimit(11) error = %v, want %s", err, errs.ErrCodeRenderTooWide)
	}
	if lines != nil {
		t.Errorf("RenderWithLimit(11) = %v, want nil", lines)
	}
}

// primeGroups nests one group of p leaves per prime under a single root,
// mirrored so the tree stays drehfreudig. Its width is 28 times the
// product of the primes up to 43.
func primeGroups() string {
	primes := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43}
	group := func(p int) string { return "(" + strings.Repeat("()", p) + ")" }

	var b strings.Builder
	b.WriteString("(")
	for _, p := range primes {
		b.WriteString(group(p))
	}
	for i := len(primes) - 1; i >= 0; i-- {
		b.WriteString(group(primes[i]))
	}
	b.WriteString(")")
	return b.String()
}

func TestRenderHugeWidth(t *testing.T) {
	root := laidOut(t, primeGroups())
	if root.Width <= DefaultMaxWidth {
		t.Fatalf("test tree is only %d wide", root.Width)
	}
	if got := Render(root); got != nil {
		t.Errorf("Render() of a %d wide tree should draw nothing, got %d lines", root.Width, len(got))
	}
	if _, err := RenderWithLimit(root, 0); !errs.Is(err, errs.ErrCodeRenderTooWide) {
		t.Errorf("RenderWithLimit(0) error = %v, want %s", err, errs.ErrCodeRenderTooWide)
	}
}

func TestString(t *testing.T) {
	got := String(laidOut(t, "(()())"))
	if want := "[]\n11"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
