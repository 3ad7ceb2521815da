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

package kernel

import (
	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/go-blasbridge/bridge"
)

// A column-major matrix read with row-major indexing is its own transpose.
// The helpers below rewrite flags for that view of the problem.

func flipUplo(ul blas.Uplo) blas.Uplo {
	if ul == blas.Upper {
		return blas.Lower
	}
	return blas.Upper
}

func flipSide(s blas.Side) blas.Side {
	if s == blas.Left {
		return blas.Right
	}
	return blas.Left
}

// flipTrans maps the transpose of a column-major gemv operand onto the
// row-major view of the same storage.
func flipTrans(t blas.Transpose) blas.Transpose {
	switch t {
	case blas.NoTrans:
		return blas.Trans
	case blas.Trans:
		return blas.NoTrans
	default:
		panic(bridge.InvariantViolation("conjugate transpose gemv has no row-major equivalent"))
	}
}

// conjugated returns a contiguous conjugated copy of n elements of x.
func conjugated[T bridge.Scalar](n int, x []T, incX int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = bridge.Conj(x[i*incX])
	}
	return out
}
