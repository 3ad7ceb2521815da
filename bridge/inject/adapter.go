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

package inject

import (
	"unsafe"

	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/go-blasbridge/bridge"
	"github.com/ajroetker/go-blasbridge/bridge/kernel"
)

// FromLibrary exposes lib through the Fortran gemm calling convention, in
// the form Register accepts. It stands in for a host process handing over
// its own BLAS symbols:
//
//	err := inject.Default().Register(inject.FromLibrary(kernel.Current(), inject.Narrow), inject.Narrow)
func FromLibrary(lib kernel.Library, width IndexWidth) map[string]any {
	if width == Wide {
		return fromLibrary[int64](lib)
	}
	return fromLibrary[int32](lib)
}

func fromLibrary[I int32 | int64](lib kernel.Library) map[string]any {
	return map[string]any{
		"sgemm_": fortranGemm[float32, I](lib.Sgemm, lib.Sscal),
		"dgemm_": fortranGemm[float64, I](lib.Dgemm, lib.Dscal),
		"cgemm_": fortranGemm[complex64, I](lib.Cgemm, lib.Cscal),
		"zgemm_": fortranGemm[complex128, I](lib.Zgemm, lib.Zscal),
	}
}

type (
	rowMajorGemm[T bridge.Scalar] func(tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	scaler[T bridge.Scalar]       func(n int, alpha T, x []T, incX int)
)

// fortranGemm adapts a row-major gemm. A column-major C is the row-major
// C^T = op(B)^T op(A)^T, so B goes first and the dimensions trade places.
func fortranGemm[T bridge.Scalar, I int32 | int64](gemm rowMajorGemm[T], scal scaler[T]) GemmFunc[T, I] {
	return func(transA, transB *byte, m, n, k *I, alpha, a *T, lda *I, b *T, ldb *I, beta, c *T, ldc *I) {
		tA, tB := blas.Transpose(*transA), blas.Transpose(*transB)
		M, N, K := int(*m), int(*n), int(*k)
		LDA, LDB, LDC := int(*lda), int(*ldb), int(*ldc)
		if M == 0 || N == 0 {
			return
		}
		cs := unsafe.Slice(c, span(LDC, M, N))
		if K == 0 {
			for j := range N {
				scal(M, *beta, cs[j*LDC:], 1)
			}
			return
		}
		as := unsafe.Slice(a, operandSpan(tA, LDA, M, K))
		bs := unsafe.Slice(b, operandSpan(tB, LDB, K, N))
		gemm(tB, tA, N, M, K, *alpha, bs, LDB, as, LDA, *beta, cs, LDC)
	}
}

// span is the number of elements a column-major rows x cols matrix with
// leading dimension ld occupies.
func span(ld, rows, cols int) int {
	return ld*(cols-1) + rows
}

// operandSpan is span for op(X) of shape rows x cols.
func operandSpan(t blas.Transpose, ld, rows, cols int) int {
	if t == blas.NoTrans {
		return span(ld, rows, cols)
	}
	return span(ld, cols, rows)
}
