// Package quantity_test provides benchmarks for the prefix optimizer and
// conversions, using deterministic random values.
package quantity_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/units"
)

// benchSizes are the sample counts to benchmark.
var benchSizes = []int{16, 256, 4096}

// sinks to defeat dead-code elimination
var (
	sinkS *quantity.Sequence
	sinkM *quantity.Matrix
	sinkC []quantity.Candidate
	sinkF float64
)

func randMagnitudes(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = (1 + 9*rng.Float64()) * math.Pow10(rng.Intn(24)-12)
	}

	return out
}

func BenchmarkSequenceApproach(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			q, err := quantity.NewSequence("", randMagnitudes(n, 1337), units.MustParse("m"))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := q.Approach(1)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = r
			}
		})
	}
}

func BenchmarkMatrixApproach(b *testing.B) {
	b.ReportAllocs()
	m := units.MustParse("m")
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			flat := randMagnitudes(3*n, 4242)
			rows := make([][]float64, n)
			for i := range rows {
				rows[i] = flat[3*i : 3*i+3]
			}
			q, err := quantity.NewMatrix("", rows, m, m, m)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := q.Approach(1)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = r
			}
		})
	}
}

func BenchmarkCandidates(b *testing.B) {
	b.ReportAllocs()
	kg := units.MustParse("kg")
	b.Run("cached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c, err := quantity.Candidates(kg)
			if err != nil {
				b.Fatal(err)
			}
			sinkC = c
		}
	})
}

func BenchmarkDefaultCost(b *testing.B) {
	b.ReportAllocs()
	cost := quantity.DefaultCost(1)
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			vals := randMagnitudes(n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = cost(vals)
			}
		})
	}
}

func BenchmarkMatrixTo(b *testing.B) {
	b.ReportAllocs()
	mm := units.MustParse("mm")
	cyl, err := coords.NewCylindrical()
	if err != nil {
		b.Fatal(err)
	}
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			flat := randMagnitudes(3*n, 99)
			rows := make([][]float64, n)
			for i := range rows {
				rows[i] = flat[3*i : 3*i+3]
			}
			q, err := quantity.NewMatrix("", rows, mm, mm, mm)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := q.To("", cyl)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = r
			}
		})
	}
}
