// Package drehfreudig decides whether a tree is "rotation-friendly".
//
// A tree is drehfreudig when both of the following hold for its leaves, read
// left to right after layout:
//
//  1. The sequence of leaf widths is a palindrome.
//  2. For every pair of leaves symmetric around the center of the sequence,
//     the sum of their depths is the same.
//
// The two predicates are exposed on their own ([IsWidthPalindrome],
// [IsConstantDepthSum]) and combined by [IsDrehfreudig]. [Check] runs the
// whole pipeline on a bracket string and returns a [Result] carrying both
// flags, their conjunction and the first offending pair of each check.
//
// Example:
//
//	res, err := drehfreudig.Check("(()(())()(()))")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.LeafWidths, res.LeafDepths, res.IsDrehfreudig)
//	// [1 1 1 1] [2 3 2 3] true
//
// Everything in this package is pure: no logging, no global state.
package drehfreudig
