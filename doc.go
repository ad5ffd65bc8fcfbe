// Package lvds is an in-memory playground of classic ordered data
// structures and the traversals that read them.
//
// What is inside?
//
//	bst/        binary search tree with parent links: insert, lookup,
//	            min/max, successor/predecessor, three-case removal
//	maxheap/    binary max-heap on an implicit 0-indexed array
//	bfs/        level-order walk and search over a bst tree
//	dfs/        pre-, in- and post-order walks over a bst tree
//	cmd/lvds    replays YAML scenarios and prints the resulting shapes
//
// Quick ASCII example:
//
//	    9
//	 4     20        {9,{4,{1},{6}},{20,{15},{170}}}
//	1 6  15  170
//
// is the tree built by inserting 9, 4, 20, 1, 6, 15, 170, shown next to
// its compact Shape rendering.
//
// The structures are not safe for concurrent use; callers that share one
// across goroutines must serialize access themselves.
//
//	go get github.com/katalvlaran/lvds
package lvds
