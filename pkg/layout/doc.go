// Package layout assigns integer widths and depths to the nodes of a tree.
//
// # Widths
//
// The root receives the total width W and every internal node splits its
// width evenly among its children. To keep every split exact, W is the least
// common multiple of all path denominators, where a leaf's path denominator
// is the product of the child counts of its strict ancestors:
//
//	(()(()))   denominators [2 2]   W = 2   leaf widths [1 1]
//	((()())()) denominators [4 4 2] W = 4   leaf widths [1 1 2]
//
// # Depths
//
// The root has depth 1 and each child has its parent's depth plus one.
//
// # Usage
//
//	total, err := layout.Apply(root)
//	if err != nil {
//	    return err
//	}
//	widths := layout.LeafWidths(root)
//	depths := layout.LeafDepths(root)
//
// Leaf sequences are read in pre-order, which is the left-to-right order of
// the leaves in the bracket string. All traversals use explicit stacks.
package layout
