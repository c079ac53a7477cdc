package tree

import (
	"strings"

	errs "github.com/matzehuels/drehfreudig/pkg/errors"
)

// Parse builds the tree described by input.
//
// It returns a nil root and a nil error when input contains no bracket at
// all, and an error coded [errs.ErrCodeMalformedTree] when the brackets do
// not balance into exactly one tree.
func Parse(input string) (*Node, error) {
	return ParseWithLimit(input, 0)
}

// ParseWithLimit is like [Parse] but rejects trees nested deeper than
// maxDepth levels. A maxDepth of zero or less disables the check.
func ParseWithLimit(input string, maxDepth int) (*Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	var (
		root  *Node
		stack []*Node
	)
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '(':
			n := &Node{}
			switch {
			case len(stack) > 0:
				stack[len(stack)-1].AddChild(n)
			case root != nil:
				return nil, errs.New(errs.ErrCodeMalformedTree, "multiple roots: second tree starts at offset %d", i)
			default:
				root = n
			}
			stack = append(stack, n)
			if maxDepth > 0 && len(stack) > maxDepth {
				return nil, errs.New(errs.ErrCodeMalformedTree, "nesting exceeds limit of %d at offset %d", maxDepth, i)
			}
		case ')':
			if len(stack) == 0 {
				return nil, errs.New(errs.ErrCodeMalformedTree, "too many closing brackets: unmatched ')' at offset %d", i)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return nil, errs.New(errs.ErrCodeMalformedTree, "too many opening brackets: %d left unclosed", len(stack))
	}
	return root, nil
}
