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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-blasbridge/bridge"
)

// strided returns x spread over a buffer with the given stride.
func strided[T bridge.Scalar](x []T, stride int) bridge.Vector[T] {
	buf := make([]T, max(len(x)*stride, 1))
	v, err := bridge.NewVector(buf, len(x), stride)
	if err != nil {
		panic(err)
	}
	for i, e := range x {
		v.Set(i, e)
	}
	return v
}

func matrices(rows [][]float64) map[string]bridge.Matrix[float64] {
	m, n := len(rows), len(rows[0])
	row := bridge.Zeros[float64](m, n, bridge.RowMajor)
	col := bridge.Zeros[float64](m, n, bridge.ColMajor)
	sub := bridge.Zeros[float64](m+1, n+3, bridge.ColMajor).Sub(1, 2, m, n)
	for i := range m {
		for j := range n {
			row.Set(i, j, rows[i][j])
			col.Set(i, j, rows[i][j])
			sub.Set(i, j, rows[i][j])
		}
	}
	return map[string]bridge.Matrix[float64]{"row": row, "col": col, "sub": sub}
}

func TestGemvModes(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	want := []float64{-2, -2}

	for name, a := range matrices(rows) {
		t.Run(name, func(t *testing.T) {
			x := strided([]float64{1, 0, -1}, 2)

			got, err := New(a, x).Eval()
			require.NoError(t, err)
			require.Equal(t, want, got.Elements())

			y := strided([]float64{math.NaN(), math.NaN()}, 3)
			require.NoError(t, New(a, x).Write(y))
			require.Equal(t, want, y.Elements())

			y = strided([]float64{10, 20}, 1)
			require.NoError(t, New(a, x).Scale(2).AddTo(y))
			require.Equal(t, []float64{6, 16}, y.Elements())

			require.NoError(t, New(a, x).AddToScaled(y, 0.5))
			require.Equal(t, []float64{1, 6}, y.Elements())
		})
	}
}

func TestGemvTransposedView(t *testing.T) {
	a := bridge.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	got, err := Fresh(1, a.T(), bridge.VectorOf([]float64{1, 1}))
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, got.Elements())
}

func TestGemvErrors(t *testing.T) {
	a := bridge.Zeros[float32](2, 3, bridge.RowMajor)

	err := Write(1, a, bridge.VectorOf(make([]float32, 2)), bridge.VectorOf(make([]float32, 2)))
	require.True(t, errors.Is(err, bridge.ErrDimensionMismatch), "got %v", err)

	bcast, err := bridge.NewVector(make([]float32, 1), 2, 0)
	require.NoError(t, err)
	err = Write(1, a, bridge.VectorOf(make([]float32, 3)), bcast)
	require.True(t, errors.Is(err, bridge.ErrLayout), "got %v", err)
}

func TestGemvEmptyX(t *testing.T) {
	a := bridge.Zeros[float64](2, 0, bridge.RowMajor)
	y := bridge.VectorOf([]float64{3, 4})
	require.NoError(t, Gemv(1, a, bridge.VectorOf[float64](nil), 2, y))
	require.Equal(t, []float64{6, 8}, y.Elements())

	require.NoError(t, Write(1, a, bridge.VectorOf[float64](nil), y))
	require.Equal(t, []float64{0, 0}, y.Elements())
}

func TestOuter(t *testing.T) {
	x := strided([]float64{1, 2}, 2)
	y := strided([]float64{3, 4, 5}, 1)
	want := []float64{3, 4, 5, 6, 8, 10}

	got, err := Outer(x, y).Eval()
	require.NoError(t, err)
	require.Equal(t, want, got.Elements())

	for name, a := range matrices([][]float64{{9, 9, 9}, {9, 9, 9}}) {
		require.NoError(t, Outer(x, y).Write(a), name)
		require.Equal(t, want, a.Elements(), name)

		require.NoError(t, Outer(x, y).Scale(-1).AddTo(a), name)
		require.Equal(t, make([]float64, 6), a.Elements(), name)
	}

	err = Outer(x, x).Write(bridge.Zeros[float64](2, 3, bridge.RowMajor))
	require.True(t, errors.Is(err, bridge.ErrDimensionMismatch))
}

func TestGerc(t *testing.T) {
	x := bridge.VectorOf([]complex128{1i, 1})
	y := bridge.VectorOf([]complex128{1i, 2})

	for _, order := range []bridge.Order{bridge.RowMajor, bridge.ColMajor} {
		a := bridge.Zeros[complex128](2, 2, order)
		require.NoError(t, Gerc(1, x, y, a))
		require.Equal(t, []complex128{1, 2i, -1i, 2}, a.Elements(), order.String())

		a = bridge.Zeros[complex128](2, 2, order)
		require.NoError(t, Ger(1, x, y, a))
		require.Equal(t, []complex128{-1, 2i, 1i, 2}, a.Elements(), order.String())
	}
}

func TestAddToSpecial(t *testing.T) {
	x := bridge.VectorOf([]float64{1, 2})

	for _, order := range []bridge.Order{bridge.RowMajor, bridge.ColMajor} {
		a := bridge.Zeros[float64](2, 2, order)
		require.NoError(t, Outer(x, x).AddToSpecial(a, bridge.Symmetric, bridge.Upper))
		require.Equal(t, []float64{1, 2, 0, 4}, a.Elements(), order.String())

		a = bridge.Zeros[float64](2, 2, order)
		require.NoError(t, Outer(x, x).Scale(2).AddToSpecial(a, bridge.Hermitian, bridge.Lower))
		require.Equal(t, []float64{2, 0, 4, 8}, a.Elements(), order.String())

		a = bridge.Zeros[float64](2, 2, order)
		require.NoError(t, Outer(x, x).AddToSpecial(a, bridge.Triangular, bridge.Lower))
		require.Equal(t, []float64{1, 2, 2, 4}, a.Elements(), order.String())
	}

	z := bridge.VectorOf([]complex128{1, 1i})
	a := bridge.Zeros[complex128](2, 2, bridge.ColMajor)
	err := Outer(z, z).AddToSpecial(a, bridge.Symmetric, bridge.Upper)
	require.True(t, errors.Is(err, bridge.ErrUnsupported), "got %v", err)

	require.NoError(t, Outer(z, z).Scale(3+1i).AddToSpecial(a, bridge.Hermitian, bridge.Upper))
	require.Equal(t, []complex128{3, -3i, 0, 3}, a.Elements())

	err = Syr(bridge.Upper, 1, x, bridge.Zeros[float64](2, 3, bridge.RowMajor))
	require.True(t, errors.Is(err, bridge.ErrDimensionMismatch))
}

func TestDot(t *testing.T) {
	got, err := Dot(bridge.VectorOf([]float64{1, 2}), strided([]float64{2, 4}, 3))
	require.NoError(t, err)
	require.Equal(t, 10.0, got)

	x := bridge.VectorOf([]complex128{1, 2})
	y := bridge.VectorOf([]complex128{2i, 4i})
	dotu, err := Dot(x, y)
	require.NoError(t, err)
	require.Equal(t, complex128(10i), dotu)

	// Conjugating the imaginary operand flips the sign of the imaginary part.
	dotc, err := Dotc(y, x)
	require.NoError(t, err)
	require.Equal(t, complex128(-10i), dotc)
	dotu, err = Dot(y, x)
	require.NoError(t, err)
	require.Equal(t, complex128(10i), dotu)

	_, err = Dot(x, bridge.VectorOf([]complex128{1}))
	require.True(t, errors.Is(err, bridge.ErrDimensionMismatch))

	empty, err := Dotc(bridge.VectorOf[complex64](nil), bridge.VectorOf[complex64](nil))
	require.NoError(t, err)
	require.Zero(t, empty)
}

func TestNormsAndScale(t *testing.T) {
	x := strided([]float32{3, -4}, 2)

	n2, err := Norm2(x)
	require.NoError(t, err)
	require.InDelta(t, 5.0, n2, 1e-6)

	n1, err := Norm1(x)
	require.NoError(t, err)
	require.InDelta(t, 7.0, n1, 1e-6)

	require.NoError(t, Scale(float32(2), x))
	require.Equal(t, []float32{6, -8}, x.Elements())

	z := bridge.VectorOf([]complex128{3 + 4i, 1})
	n2, err = Norm2(z)
	require.NoError(t, err)
	if diff := cmp.Diff(math.Sqrt(26), n2, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("complex nrm2 mismatch (-want +got):\n%s", diff)
	}
	n1, err = Norm1(z)
	require.NoError(t, err)
	require.InDelta(t, 8.0, n1, 1e-12)
}

func TestAxpyCopySwap(t *testing.T) {
	x := bridge.VectorOf([]float64{1, 2, 3})
	y := strided([]float64{10, 20, 30}, 2)

	require.NoError(t, AddToScaled(2, x, y))
	require.Equal(t, []float64{12, 24, 36}, y.Elements())

	require.NoError(t, Swap(x, y))
	require.Equal(t, []float64{12, 24, 36}, x.Elements())
	require.Equal(t, []float64{1, 2, 3}, y.Elements())

	require.NoError(t, Copy(x, y))
	require.Equal(t, x.Elements(), y.Elements())

	require.True(t, errors.Is(AddToScaled(1, x, bridge.VectorOf([]float64{1})), bridge.ErrDimensionMismatch))
}

func TestArgmaxAbs(t *testing.T) {
	idx, ok, err := ArgmaxAbs(strided([]float64{1, -7, 3, 7}, 3))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok, err = ArgmaxAbs(bridge.VectorOf[float64](nil))
	require.NoError(t, err)
	require.False(t, ok)

	rows := [][]float64{{1, 2, 3}, {-9, 0, 4}}
	for name, m := range matrices(rows) {
		i, j, ok, err := ArgmaxAbsMatrix(m)
		if name == "sub" {
			require.True(t, errors.Is(err, bridge.ErrLayout), "got %v", err)
			continue
		}
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, [2]int{1, 0}, [2]int{i, j}, name)
	}

	_, _, ok, err = ArgmaxAbsMatrix(bridge.Zeros[float64](0, 3, bridge.RowMajor))
	require.NoError(t, err)
	require.False(t, ok)
}
