package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/drehfreudig/pkg/errors"
	"github.com/matzehuels/drehfreudig/pkg/tree"
)

func mustParse(t *testing.T, input string) *tree.Node {
	t.Helper()
	root, err := tree.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return root
}

func TestGCD(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{5, 5, 5},
		{1, 9, 1},
		{9, 0, 9},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{4, 6, 12},
		{2, 2, 2},
		{1, 7, 7},
		{3, 5, 15},
	}
	for _, tt := range tests {
		got, err := LCM(tt.a, tt.b)
		if err != nil {
			t.Fatalf("LCM(%d, %d) error: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("LCM(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLCMOverflow(t *testing.T) {
	_, err := LCM(math.MaxInt/2, 3)
	if !errs.Is(err, errs.ErrCodeWidthOverflow) {
		t.Errorf("error = %v, want WIDTH_OVERFLOW", err)
	}
}

func TestLCMAll(t *testing.T) {
	got, err := LCMAll(nil)
	if err != nil || got != 1 {
		t.Errorf("LCMAll(nil) = %d, %v; want 1, nil", got, err)
	}
	got, err = LCMAll([]int{4, 4, 6, 6, 6})
	if err != nil || got != 12 {
		t.Errorf("LCMAll = %d, %v; want 12, nil", got, err)
	}
}

func TestDenominators(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"()", []int{1}},
		{"(()())", []int{2, 2}},
		{"(()(()))", []int{2, 2}},
		{"((()())())", []int{4, 4, 2}},
		{"((()())(()()()))", []int{4, 4, 6, 6, 6}},
	}
	for _, tt := range tests {
		got, err := Denominators(mustParse(t, tt.input))
		if err != nil {
			t.Fatalf("Denominators(%s) error: %v", tt.input, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Denominators(%s) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestTotalWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"()", 1},
		{"(()())", 2},
		{"(()(()))", 2},
		{"((()())())", 4},
		{"((()())(()()()))", 12},
		{"(()()())", 3},
	}
	for _, tt := range tests {
		got, err := TotalWidth(mustParse(t, tt.input))
		if err != nil {
			t.Fatalf("TotalWidth(%s) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("TotalWidth(%s) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTotalWidthDivisibleByDenominators(t *testing.T) {
	inputs := []string{
		"((()())(()()()))",
		"(((()()())(()))(()()()()()))",
		"((((()()))))",
		"(()(()())((()()()())()))",
	}
	for _, input := range inputs {
		root := mustParse(t, input)
		total, err := TotalWidth(root)
		if err != nil {
			t.Fatalf("TotalWidth(%s) error: %v", input, err)
		}
		if total <= 0 {
			t.Errorf("TotalWidth(%s) = %d, want positive", input, total)
		}
		denoms, _ := Denominators(root)
		for _, d := range denoms {
			if total%d != 0 {
				t.Errorf("TotalWidth(%s) = %d not divisible by %d", input, total, d)
			}
		}
	}
}

func TestTotalWidthNil(t *testing.T) {
	got, err := TotalWidth(nil)
	if err != nil || got != 0 {
		t.Errorf("TotalWidth(nil) = %d, %v; want 0, nil", got, err)
	}
}

func TestTotalWidthOverflow(t *testing.T) {
	// 70 levels of binary branching need 2^70 columns.
	var b strings.Builder
	for range 70 {
		b.WriteString("(()")
	}
	b.WriteString("()")
	b.WriteString(strings.Repeat(")", 70))

	root := mustParse(t, b.String())
	if _, err := TotalWidth(root); !errs.Is(err, errs.ErrCodeWidthOverflow) {
		t.Errorf("error = %v, want WIDTH_OVERFLOW", err)
	}
}

func TestAssignInvariants(t *testing.T) {
	inputs := []string{
		"()",
		"(()())",
		"((()())())",
		"((()())(()()()))",
		"(((()()())(()))(()()()()()))",
	}
	for _, input := range inputs {
		root := mustParse(t, input)
		total, err := Apply(root)
		if err != nil {
			t.Fatalf("Apply(%s) error: %v", input, err)
		}
		if root.Width != total || root.Depth != 1 {
			t.Errorf("%s: root width/depth = %d/%d, want %d/1", input, root.Width, root.Depth, total)
		}
		root.Walk(func(n *tree.Node) bool {
			if n.IsLeaf() {
				if n.Width < 1 {
					t.Errorf("%s: leaf width %d < 1", input, n.Width)
				}
				return true
			}
			sum := 0
			for _, c := range n.Children {
				sum += c.Width
				if c.Depth != n.Depth+1 {
					t.Errorf("%s: child depth %d, parent depth %d", input, c.Depth, n.Depth)
				}
			}
			if sum != n.Width {
				t.Errorf("%s: children widths sum to %d, parent width %d", input, sum, n.Width)
			}
			return true
		})
	}
}

func TestLeafSequences(t *testing.T) {
	tests := []struct {
		input  string
		widths []int
		depths []int
	}{
		{"()", []int{1}, []int{1}},
		{"(()())", []int{1, 1}, []int{2, 2}},
		{"(()(()))", []int{1, 1}, []int{2, 3}},
		{"((()())())", []int{1, 1, 2}, []int{3, 3, 2}},
		{"((()())(()()()))", []int{3, 3, 2, 2, 2}, []int{3, 3, 3, 3, 3}},
		{"(()(())()())", []int{1, 1, 1, 1}, []int{2, 3, 2, 2}},
	}
	for _, tt := range tests {
		root := mustParse(t, tt.input)
		if _, err := Apply(root); err != nil {
			t.Fatalf("Apply(%s) error: %v", tt.input, err)
		}
		if diff := cmp.Diff(tt.widths, LeafWidths(root)); diff != "" {
			t.Errorf("LeafWidths(%s) mismatch (-want +got):\n%s", tt.input, diff)
		}
		if diff := cmp.Diff(tt.depths, LeafDepths(root)); diff != "" {
			t.Errorf("LeafDepths(%s) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestLeafSequencesNil(t *testing.T) {
	if got := LeafWidths(nil); len(got) != 0 {
		t.Errorf("LeafWidths(nil) = %v, want empty", got)
	}
	if got := LeafDepths(nil); len(got) != 0 {
		t.Errorf("LeafDepths(nil) = %v, want empty", got)
	}
}
