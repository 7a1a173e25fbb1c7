package oneormany_test

import (
	"encoding/json"
	"testing"

	"github.com/Jarekkkkk/rig/oneormany"
)

// makeInts creates a OneOrMany[int] of size n for benchmarks.
func makeInts(n int) oneormany.OneOrMany[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	o, _ := oneormany.Many(items)
	return o
}

func BenchmarkMapFunc(b *testing.B) {
	o := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		oneormany.Map(o, func(n int) int { return n * 2 })
	}
}

func BenchmarkMerge(b *testing.B) {
	parts := make([]oneormany.OneOrMany[int], 100)
	for i := range parts {
		parts[i] = makeInts(100)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = oneormany.Merge(parts)
	}
}

func BenchmarkValues(b *testing.B) {
	o := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for n := range o.Values() {
			sum += n
		}
		_ = sum
	}
}

func BenchmarkUnmarshalJSON(b *testing.B) {
	data, _ := json.Marshal(makeInts(1_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var o oneormany.OneOrMany[int]
		if err := json.Unmarshal(data, &o); err != nil {
			b.Fatal(err)
		}
	}
}
