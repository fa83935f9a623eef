package binheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/procmesh/binheap"
)

// BenchmarkHeap_PushPop pushes then drains 10k random floats per iteration.
func BenchmarkHeap_PushPop(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	values := make([]float64, 10000)
	for i := range values {
		values[i] = r.Float64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := binheap.New(func(v float64) float64 { return v })
		for _, v := range values {
			h.Push(v)
		}
		for h.Size() > 0 {
			_, _ = h.Pop()
		}
	}
}
