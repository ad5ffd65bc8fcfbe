package bst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvds/bst"
)

const benchN = 1 << 14

// BenchmarkInsert measures building a tree from a random permutation.
func BenchmarkInsert(b *testing.B) {
	perm := rand.New(rand.NewSource(1)).Perm(benchN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := bst.New[int]()
		for _, v := range perm {
			tr.Insert(v)
		}
	}
}

// BenchmarkLookup measures point lookups on a random tree.
func BenchmarkLookup(b *testing.B) {
	r := rand.New(rand.NewSource(2))
	tr := bst.Build(r.Perm(benchN)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Lookup(i % benchN)
	}
}

// BenchmarkRemove measures draining a random tree.
func BenchmarkRemove(b *testing.B) {
	r := rand.New(rand.NewSource(3))
	perm := r.Perm(benchN)
	order := r.Perm(benchN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := bst.Build(perm...)
		b.StartTimer()
		for _, v := range order {
			tr.Remove(v)
		}
	}
}
