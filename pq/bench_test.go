package pq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pqpath/pq"
)

func benchValues(n int) []int {
	rng := rand.New(rand.NewSource(1))
	vs := make([]int, n)
	for i := range vs {
		vs[i] = rng.Intn(pq.DefaultMaxKey + 1)
	}

	return vs
}

// BenchmarkSort measures insert-all then extract-all for every backing.
func BenchmarkSort(b *testing.B) {
	vs := benchValues(2000)
	for _, k := range pq.Kinds {
		b.Run(k.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := pq.Sort(k, vs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDecreaseKey measures a decrease-key sweep over a full queue.
func BenchmarkDecreaseKey(b *testing.B) {
	vs := benchValues(1000)
	for _, k := range pq.Kinds {
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				q, _ := pq.NewInts(k)
				hs := make([]*pq.Handle[int], len(vs))
				for j, v := range vs {
					hs[j], _ = q.Insert(v)
				}
				for _, h := range hs {
					if h.Key() > 0 {
						_, _ = q.DecreaseKey(h, h.Key()/2)
					}
				}
			}
		})
	}
}
