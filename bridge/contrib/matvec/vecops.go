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

package matvec

import (
	"github.com/ajroetker/go-blasbridge/bridge"
	"github.com/ajroetker/go-blasbridge/bridge/kernel"
)

// AddToScaled computes y += alpha*x.
func AddToScaled[T bridge.Scalar](alpha T, x, y bridge.Vector[T]) error {
	incX, incY, err := bridge.ResolvePair("axpy", x, y)
	if err != nil || x.Len() == 0 {
		return err
	}
	kernel.For[T]().Axpy(x.Len(), alpha, x.Data(), incX, y.Data(), incY)
	return nil
}

// Dot returns the unconjugated dot product of x and y.
func Dot[T bridge.Scalar](x, y bridge.Vector[T]) (T, error) {
	incX, incY, err := bridge.ResolvePair("dot", x, y)
	if err != nil || x.Len() == 0 {
		return bridge.Zero[T](), err
	}
	return kernel.For[T]().Dot(x.Len(), x.Data(), incX, y.Data(), incY), nil
}

// Dotc returns the dot product of conj(x) and y. For real kinds it is Dot.
func Dotc[T bridge.Scalar](x, y bridge.Vector[T]) (T, error) {
	incX, incY, err := bridge.ResolvePair("dotc", x, y)
	if err != nil || x.Len() == 0 {
		return bridge.Zero[T](), err
	}
	return kernel.For[T]().Dotc(x.Len(), x.Data(), incX, y.Data(), incY), nil
}

// Norm2 returns the Euclidean norm of x.
func Norm2[T bridge.Scalar](x bridge.Vector[T]) (float64, error) {
	inc, err := bridge.Increment("nrm2", "x", x)
	if err != nil || x.Len() == 0 {
		return 0, err
	}
	return kernel.For[T]().Nrm2(x.Len(), x.Data(), inc), nil
}

// Norm1 returns the sum of absolute values of x. For complex kinds each
// element contributes |re|+|im|.
func Norm1[T bridge.Scalar](x bridge.Vector[T]) (float64, error) {
	inc, err := bridge.Increment("asum", "x", x)
	if err != nil || x.Len() == 0 {
		return 0, err
	}
	return kernel.For[T]().Asum(x.Len(), x.Data(), inc), nil
}

// Scale computes x *= alpha.
func Scale[T bridge.Scalar](alpha T, x bridge.Vector[T]) error {
	inc, err := bridge.Increment("scal", "x", x)
	if err != nil || x.Len() == 0 {
		return err
	}
	kernel.For[T]().Scal(x.Len(), alpha, x.Data(), inc)
	return nil
}

// Copy copies x into y.
func Copy[T bridge.Scalar](x, y bridge.Vector[T]) error {
	incX, incY, err := bridge.ResolvePair("copy", x, y)
	if err != nil || x.Len() == 0 {
		return err
	}
	kernel.For[T]().Copy(x.Len(), x.Data(), incX, y.Data(), incY)
	return nil
}

// Swap exchanges the contents of x and y.
func Swap[T bridge.Scalar](x, y bridge.Vector[T]) error {
	incX, incY, err := bridge.ResolvePair("swap", x, y)
	if err != nil || x.Len() == 0 {
		return err
	}
	kernel.For[T]().Swap(x.Len(), x.Data(), incX, y.Data(), incY)
	return nil
}

// ArgmaxAbs returns the index of the first element of x with the largest
// absolute value (|re|+|im| for complex kinds). ok is false for an empty x.
func ArgmaxAbs[T bridge.Scalar](x bridge.Vector[T]) (idx int, ok bool, err error) {
	inc, err := bridge.Increment("amax", "x", x)
	if err != nil || x.Len() == 0 {
		return 0, false, err
	}
	return kernel.For[T]().Iamax(x.Len(), x.Data(), inc), true, nil
}

// ArgmaxAbsMatrix returns the (row, column) of the element of m with the
// largest absolute value. m must be dense in one order so that it can be
// scanned as a single vector; ties resolve to the first element in that
// order. ok is false for an empty m.
func ArgmaxAbsMatrix[T bridge.Scalar](m bridge.Matrix[T]) (i, j int, ok bool, err error) {
	if m.Empty() {
		return 0, 0, false, nil
	}
	rows, cols := m.Rows(), m.Cols()
	s := m.Strides()
	var rowMajor bool
	switch {
	case (s[1] == 1 || cols == 1) && (s[0] == cols || rows == 1):
		rowMajor = true
	case (s[0] == 1 || rows == 1) && (s[1] == rows || cols == 1):
	default:
		return 0, 0, false, bridge.NewLayoutError("amax", "m", m.Shape(), s, "not dense")
	}
	flat := kernel.For[T]().Iamax(rows*cols, m.Data(), 1)
	if rowMajor {
		return flat / cols, flat % cols, true, nil
	}
	return flat % rows, flat / rows, true, nil
}
