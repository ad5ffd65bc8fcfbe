package maxheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvds/maxheap"
)

const benchN = 1 << 15

// BenchmarkInsert measures pushing random values.
func BenchmarkInsert(b *testing.B) {
	vals := rand.New(rand.NewSource(1)).Perm(benchN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := maxheap.New[int]()
		for _, v := range vals {
			h.Insert(v)
		}
	}
}

// BenchmarkExtractMax measures draining a heapified slice.
func BenchmarkExtractMax(b *testing.B) {
	vals := rand.New(rand.NewSource(2)).Perm(benchN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h := maxheap.From(vals)
		b.StartTimer()
		for h.Len() > 0 {
			h.ExtractMax()
		}
	}
}
