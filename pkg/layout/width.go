package layout

import (
	"math"

	errs "github.com/matzehuels/drehfreudig/pkg/errors"
	"github.com/matzehuels/drehfreudig/pkg/tree"
)

// GCD returns the greatest common divisor of a and b (Euclid).
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two positive integers, computed
// as a * (b / gcd(a, b)). It fails with [errs.ErrCodeWidthOverflow] when the
// result does not fit in an int.
func LCM(a, b int) (int, error) {
	q := b / GCD(a, b)
	if q != 0 && a > math.MaxInt/q {
		return 0, errs.New(errs.ErrCodeWidthOverflow, "lcm(%d, %d) overflows", a, b)
	}
	return a * q, nil
}

// LCMAll folds [LCM] over nums from the left. The LCM of an empty list is 1.
func LCMAll(nums []int) (int, error) {
	result := 1
	for _, n := range nums {
		var err error
		if result, err = LCM(result, n); err != nil {
			return 0, err
		}
	}
	return result, nil
}

// Denominators returns the path denominator of every leaf of root in
// left-to-right order. A single-node tree has one leaf with denominator 1.
func Denominators(root *tree.Node) ([]int, error) {
	if root == nil {
		return nil, nil
	}
	type frame struct {
		node  *tree.Node
		denom int
	}
	var out []int
	stack := []frame{{root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		k := len(f.node.Children)
		if k == 0 {
			out = append(out, f.denom)
			continue
		}
		if f.denom > math.MaxInt/k {
			return nil, errs.New(errs.ErrCodeWidthOverflow, "path denominator %d * %d overflows", f.denom, k)
		}
		next := f.denom * k
		for i := k - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], next})
		}
	}
	return out, nil
}

// TotalWidth returns the smallest width the root can take so that every
// node's width divides evenly among its children at every level.
// A nil root has total width 0.
func TotalWidth(root *tree.Node) (int, error) {
	if root == nil {
		return 0, nil
	}
	denoms, err := Denominators(root)
	if err != nil {
		return 0, err
	}
	return LCMAll(denoms)
}

// Assign writes Width and Depth into every node of root in one top-down
// pass. The root gets totalWidth and depth 1; each child gets its parent's
// width divided by the parent's child count and its parent's depth plus one.
//
// totalWidth must be divisible by every path denominator, which is what
// [TotalWidth] guarantees.
func Assign(root *tree.Node, totalWidth int) {
	if root == nil {
		return
	}
	root.Width, root.Depth = totalWidth, 1
	stack := []*tree.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsLeaf() {
			continue
		}
		w := n.Width / len(n.Children)
		for _, c := range n.Children {
			c.Width, c.Depth = w, n.Depth+1
			stack = append(stack, c)
		}
	}
}

// Apply computes the total width of root and assigns widths and depths.
// It returns the total width.
func Apply(root *tree.Node) (int, error) {
	total, err := TotalWidth(root)
	if err != nil {
		return 0, err
	}
	Assign(root, total)
	return total, nil
}

// LeafWidths returns the widths of the leaves of root in reading order.
func LeafWidths(root *tree.Node) []int {
	return collect(root, func(n *tree.Node) int { return n.Width })
}

// LeafDepths returns the depths of the leaves of root in reading order.
func LeafDepths(root *tree.Node) []int {
	return collect(root, func(n *tree.Node) int { return n.Depth })
}

func collect(root *tree.Node, field func(*tree.Node) int) []int {
	leaves := root.Leaves()
	out := make([]int, len(leaves))
	for i, l := range leaves {
		out[i] = field(l)
	}
	return out
}
