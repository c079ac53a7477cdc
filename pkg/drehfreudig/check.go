package drehfreudig

import (
	errs "github.com/matzehuels/drehfreudig/pkg/errors"
	"github.com/matzehuels/drehfreudig/pkg/layout"
	"github.com/matzehuels/drehfreudig/pkg/tree"
)

// Mismatch identifies the first symmetric leaf pair that breaks a check.
//
// For the width check Left/RightValue are the two leaf widths. For the depth
// check LeftValue is the depth sum of the pair and RightValue the expected
// sum taken from the outermost pair.
type Mismatch struct {
	Left       int `json:"left"`
	Right      int `json:"right"`
	LeftValue  int `json:"left_value"`
	RightValue int `json:"right_value"`
}

// Result is the outcome of checking one tree.
type Result struct {
	Tree               string    `json:"tree"`
	TotalWidth         int       `json:"total_width"`
	LeafWidths         []int     `json:"leaf_widths"`
	LeafDepths         []int     `json:"leaf_depths"`
	IsWidthPalindrome  bool      `json:"is_width_palindrome"`
	IsConstantDepthSum bool      `json:"is_constant_depth_sum"`
	IsDrehfreudig      bool      `json:"is_drehfreudig"`
	WidthMismatch      *Mismatch `json:"width_mismatch,omitempty"`
	DepthMismatch      *Mismatch `json:"depth_mismatch,omitempty"`
}

// IsWidthPalindrome reports whether widths reads the same in both
// directions. Sequences of length 0 and 1 are palindromes.
func IsWidthPalindrome(widths []int) bool {
	return widthMismatch(widths) == nil
}

// IsConstantDepthSum reports whether depths[i] + depths[n-1-i] is the same
// for every symmetric pair. An empty sequence passes.
func IsConstantDepthSum(depths []int) bool {
	return depthMismatch(depths) == nil
}

// IsDrehfreudig reports whether both checks pass.
func IsDrehfreudig(widths, depths []int) bool {
	return IsWidthPalindrome(widths) && IsConstantDepthSum(depths)
}

func widthMismatch(widths []int) *Mismatch {
	n := len(widths)
	for i := 0; i < n/2; i++ {
		if j := n - 1 - i; widths[i] != widths[j] {
			return &Mismatch{Left: i, Right: j, LeftValue: widths[i], RightValue: widths[j]}
		}
	}
	return nil
}

func depthMismatch(depths []int) *Mismatch {
	n := len(depths)
	if n == 0 {
		return nil
	}
	expected := depths[0] + depths[n-1]
	for i := 1; i < n/2; i++ {
		j := n - 1 - i
		if sum := depths[i] + depths[j]; sum != expected {
			return &Mismatch{Left: i, Right: j, LeftValue: sum, RightValue: expected}
		}
	}
	return nil
}

// Evaluate lays out root and applies both checks. Both checks always run,
// independently of each other. root must not be nil.
func Evaluate(root *tree.Node) (*Result, error) {
	if root == nil {
		return nil, errs.New(errs.ErrCodeEmptyInput, "no tree to evaluate")
	}
	total, err := layout.Apply(root)
	if err != nil {
		return nil, err
	}

	widths := layout.LeafWidths(root)
	depths := layout.LeafDepths(root)
	res := &Result{
		Tree:          root.String(),
		TotalWidth:    total,
		LeafWidths:    widths,
		LeafDepths:    depths,
		WidthMismatch: widthMismatch(widths),
		DepthMismatch: depthMismatch(depths),
	}
	res.IsWidthPalindrome = res.WidthMismatch == nil
	res.IsConstantDepthSum = res.DepthMismatch == nil
	res.IsDrehfreudig = res.IsWidthPalindrome && res.IsConstantDepthSum
	return res, nil
}

// Check parses input and evaluates the resulting tree.
//
// Input without a tree fails with [errs.ErrCodeEmptyInput]; unbalanced input
// fails with [errs.ErrCodeMalformedTree].
func Check(input string) (*Result, error) {
	return CheckWithLimit(input, 0)
}

// CheckWithLimit is like [Check] but rejects trees nested deeper than
// maxDepth. A maxDepth of zero or less disables the limit.
func CheckWithLimit(input string, maxDepth int) (*Result, error) {
	root, err := tree.ParseWithLimit(input, maxDepth)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errs.New(errs.ErrCodeEmptyInput, "input contains no tree")
	}
	return Evaluate(root)
}
