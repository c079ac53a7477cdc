package layout_test

import (
	"fmt"

	"github.com/matzehuels/drehfreudig/pkg/layout"
	"github.com/matzehuels/drehfreudig/pkg/tree"
)

func ExampleApply() {
	root, _ := tree.Parse("((()())(()()()))")

	total, err := layout.Apply(root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Total width:", total)
	fmt.Println("Leaf widths:", layout.LeafWidths(root))
	fmt.Println("Leaf depths:", layout.LeafDepths(root))
	// Output:
	// Total width: 12
	// Leaf widths: [3 3 2 2 2]
	// Leaf depths: [3 3 3 3 3]
}
