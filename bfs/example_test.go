package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvds/bfs"
	"github.com/katalvlaran/lvds/bst"
)

// ExampleWalk prints the sample tree level by level.
func ExampleWalk() {
	//      9
	//   4     20
	//  1 6  15  170
	tr := bst.Build(9, 4, 20, 1, 6, 15, 170)
	res, err := bfs.Walk(tr.Root())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	for d, level := range res.Levels() {
		fmt.Println(d, level)
	}
	// Output:
	// [9 4 20 1 6 15 170]
	// 0 [9]
	// 1 [4 20]
	// 2 [1 6 15 170]
}

// ExampleSearch looks for a present and a missing value.
func ExampleSearch() {
	tr := bst.Build(9, 4, 20, 1, 6, 15, 170)

	n, _ := bfs.Search(tr.Root(), 15)
	fmt.Println(n.Value())

	n, _ = bfs.Search(tr.Root(), 152)
	fmt.Println(n == nil)

	rec := bfs.SearchRecursive([]*bst.Node[int]{tr.Root()}, 15)
	fmt.Println(rec.Value())
	// Output:
	// 15
	// true
	// 15
}
