package tree

import "testing"

func mustParse(t *testing.T, input string) *Node {
	t.Helper()
	root, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return root
}

func TestNodeIsLeaf(t *testing.T) {
	root := mustParse(t, "(())")
	if root.IsLeaf() {
		t.Error("root with a child should not be a leaf")
	}
	if !root.Children[0].IsLeaf() {
		t.Error("child without children should be a leaf")
	}
}

func TestNodeLeavesOrder(t *testing.T) {
	root := mustParse(t, "((()())())")
	leaves := root.Leaves()
	if len(leaves) != 3 {
		t.Fatalf("len(Leaves()) = %d, want 3", len(leaves))
	}
	a := root.Children[0]
	want := []*Node{a.Children[0], a.Children[1], root.Children[1]}
	for i := range want {
		if leaves[i] != want[i] {
			t.Errorf("leaf %d is not the expected node", i)
		}
	}
}

func TestNodeSizeAndHeight(t *testing.T) {
	tests := []struct {
		input  string
		size   int
		height int
	}{
		{"()", 1, 1},
		{"(()())", 3, 2},
		{"(()(()))", 4, 3},
		{"((()())(()()()))", 8, 3},
	}
	for _, tt := range tests {
		root := mustParse(t, tt.input)
		if got := root.Size(); got != tt.size {
			t.Errorf("%s: Size() = %d, want %d", tt.input, got, tt.size)
		}
		if got := root.Height(); got != tt.height {
			t.Errorf("%s: Height() = %d, want %d", tt.input, got, tt.height)
		}
	}
}

func TestNodeWalkSkipsSubtree(t *testing.T) {
	root := mustParse(t, "((()())())")
	visited := 0
	root.Walk(func(n *Node) bool {
		visited++
		return n == root
	})
	// root plus its two direct children; grandchildren are skipped
	if visited != 3 {
		t.Errorf("visited %d nodes, want 3", visited)
	}
}

func TestNilNode(t *testing.T) {
	var n *Node
	if n.String() != "" {
		t.Error("nil String() should be empty")
	}
	if n.Height() != 0 {
		t.Error("nil Height() should be 0")
	}
	if n.Size() != 0 {
		t.Error("nil Size() should be 0")
	}
	if len(n.Leaves()) != 0 {
		t.Error("nil Leaves() should be empty")
	}
}
