// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the small fixed-shape kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlopt/matrix"
)

// benchSizes are the matrix sizes to benchmark (the solver works on small shapes).
var benchSizes = []int{2, 5, 16}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float32]
	sinkF float32
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense32(b, n, n, 1337)
			B := RandomDense32(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, err := matrix.AddScaledIdentity(RandomDense32(b, n, n, 99), float32(n))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkNormSquared(b *testing.B) {
	b.ReportAllocs()
	A := RandomDense32(b, 16, 16, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = A.NormSquared()
	}
}
