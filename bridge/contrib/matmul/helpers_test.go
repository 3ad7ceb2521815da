// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matmul

import (
	"math/cmplx"
	"math/rand"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-blasbridge/bridge"
)

var approx = cmp.Options{
	cmpopts.EquateApprox(0, 1e-9),
	cmp.Comparer(func(x, y complex128) bool { return cmplx.Abs(x-y) <= 1e-9 }),
}

// matmulRef computes a*b with a naive triple loop.
func matmulRef[T bridge.Scalar](a, b [][]T) [][]T {
	m, k, n := len(a), len(b), len(b[0])
	out := make([][]T, m)
	for i := range m {
		out[i] = make([]T, n)
		for j := range n {
			var sum T
			for p := range k {
				sum += a[i][p] * b[p][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func toRows[T bridge.Scalar](m bridge.Matrix[T]) [][]T {
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = m.Row(i).Elements()
	}
	return out
}

func randRows(rng *rand.Rand, m, n int) [][]float64 {
	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = rng.Float64()*2 - 1
		}
	}
	return out
}

func randComplexRows(rng *rand.Rand, m, n int) [][]complex128 {
	out := make([][]complex128, m)
	for i := range out {
		out[i] = make([]complex128, n)
		for j := range out[i] {
			out[i][j] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
		}
	}
	return out
}

// storages returns the same logical matrix stored four ways: dense
// row-major, dense column-major, a sub-view of a larger row-major buffer and
// the transpose of a dense row-major buffer.
func storages[T bridge.Scalar](rows [][]T) map[string]bridge.Matrix[T] {
	m, n := len(rows), len(rows[0])

	row := bridge.Zeros[T](m, n, bridge.RowMajor)
	col := bridge.Zeros[T](m, n, bridge.ColMajor)
	sub := bridge.Zeros[T](m+3, n+2, bridge.RowMajor).Sub(2, 1, m, n)
	tr := bridge.Zeros[T](n, m, bridge.RowMajor).T()
	for i := range m {
		for j := range n {
			for _, v := range []bridge.Matrix[T]{row, col, sub, tr} {
				v.Set(i, j, rows[i][j])
			}
		}
	}
	return map[string]bridge.Matrix[T]{"row": row, "col": col, "sub": sub, "transposed": tr}
}
