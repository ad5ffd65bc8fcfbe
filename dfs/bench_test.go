package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvds/bst"
	"github.com/katalvlaran/lvds/dfs"
)

// BenchmarkDFS_InOrder walks a random tree in order.
func BenchmarkDFS_InOrder(b *testing.B) {
	const N = 10000
	tr := bst.Build(rand.New(rand.NewSource(1)).Perm(N)...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Walk(tr.Root(), dfs.InOrder)
	}
}
