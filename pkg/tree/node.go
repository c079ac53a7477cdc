package tree

import "strings"

// Node is one vertex of an ordered tree.
//
// Children are owned exclusively by their parent and keep the order in which
// they appeared in the input. Width and Depth are zero until the layout pass
// assigns them.
type Node struct {
	Children []*Node

	// Width is the horizontal space allocated to the node and its subtree.
	Width int
	// Depth is 1 for the root and parent depth + 1 for every child.
	Depth int
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// AddChild appends c as the last child of n.
func (n *Node) AddChild(c *Node) { n.Children = append(n.Children, c) }

// Walk visits n and its descendants in pre-order, children left to right.
// Returning false from fn skips the subtree below the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			continue
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
}

// Leaves returns the leaves of the subtree rooted at n in left-to-right
// reading order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(c *Node) bool {
		if c.IsLeaf() {
			leaves = append(leaves, c)
		}
		return true
	})
	return leaves
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	size := 0
	n.Walk(func(*Node) bool {
		size++
		return true
	})
	return size
}

// Height returns the number of nodes on the longest root-to-leaf path.
// A nil tree has height 0.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	type frame struct {
		node  *Node
		level int
	}
	height := 0
	stack := []frame{{n, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.level)
		for _, c := range f.node.Children {
			stack = append(stack, frame{c, f.level + 1})
		}
	}
	return height
}

// String returns the canonical bracket form of the subtree rooted at n,
// without any of the non-bracket characters of the original input.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(2 * n.Size())

	type frame struct {
		node *Node
		next int
	}
	b.WriteByte('(')
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.Children) {
			child := top.node.Children[top.next]
			top.next++
			b.WriteByte('(')
			stack = append(stack, frame{node: child})
			continue
		}
		b.WriteByte(')')
		stack = stack[:len(stack)-1]
	}
	return b.String()
}
