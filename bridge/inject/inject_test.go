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
	"math"
	"math/cmplx"
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-blasbridge/bridge"
	"github.com/ajroetker/go-blasbridge/bridge/kernel"
)

var approx = cmp.Options{
	cmpopts.EquateApprox(0, 1e-9),
	cmp.Comparer(func(x, y complex128) bool { return cmplx.Abs(x-y) <= 1e-9 }),
}

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

// storages returns rows stored dense row-major, dense column-major, as a
// sub-view and as a transposed view.
func storages[T bridge.Scalar](rows [][]T) map[string]bridge.Matrix[T] {
	m, n := len(rows), len(rows[0])
	row := bridge.Zeros[T](m, n, bridge.RowMajor)
	col := bridge.Zeros[T](m, n, bridge.ColMajor)
	sub := bridge.Zeros[T](m+2, n+3, bridge.ColMajor).Sub(1, 2, m, n)
	tr := bridge.Zeros[T](n, m, bridge.ColMajor).T()
	for i := range m {
		for j := range n {
			for _, v := range []bridge.Matrix[T]{row, col, sub, tr} {
				v.Set(i, j, rows[i][j])
			}
		}
	}
	return map[string]bridge.Matrix[T]{"row": row, "col": col, "sub": sub, "transposed": tr}
}

func registered(t *testing.T, width IndexWidth) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(FromLibrary(kernel.Current(), width), width))
	return r
}

// gemmCall is one recorded invocation of a Fortran gemm.
type gemmCall struct {
	TransA, TransB byte
	M, N, K        int64
	LDA, LDB, LDC  int64
}

func recorder[I int32 | int64](calls *[]gemmCall) GemmFunc[float64, I] {
	return func(transA, transB *byte, m, n, k *I, alpha, a *float64, lda *I, b *float64, ldb *I, beta, c *float64, ldc *I) {
		*calls = append(*calls, gemmCall{
			TransA: *transA, TransB: *transB,
			M: int64(*m), N: int64(*n), K: int64(*k),
			LDA: int64(*lda), LDB: int64(*ldb), LDC: int64(*ldc),
		})
	}
}

func TestRegisterOnce(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.IsRegistered())
	_, ok := r.AvailableFunctions()
	require.False(t, ok)

	const callers = 16
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = r.Register(FromLibrary(kernel.Current(), Narrow), Narrow)
		}()
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		require.True(t, errors.Is(err, ErrAlreadyRegistered), "%v", err)
		require.EqualError(t, err, "BLAS backend already registered")
	}
	require.Equal(t, 1, won)
	require.True(t, r.IsRegistered())
}

func TestRegisterUnknownFunction(t *testing.T) {
	r := NewRegistry()
	fns := FromLibrary(kernel.Current(), Narrow)
	fns["xyz_"] = DgemmLP64(nil)

	err := r.Register(fns, Narrow)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownFunction))
	var re *RegistrationError
	require.True(t, errors.As(err, &re))
	require.Equal(t, "xyz_", re.Name)
	require.Empty(t, re.Hint)
	require.EqualError(t, err, "unknown BLAS function: xyz_")
	require.False(t, r.IsRegistered())

	// A rejected call leaves the registry open.
	require.NoError(t, r.Register(FromLibrary(kernel.Current(), Narrow), Narrow))
}

func TestRegisterHint(t *testing.T) {
	err := NewRegistry().Register(map[string]any{"dgem_": nil}, Narrow)
	var re *RegistrationError
	require.True(t, errors.As(err, &re))
	require.Equal(t, "dgemm_", re.Hint)
	require.EqualError(t, err, "unknown BLAS function: dgem_ (did you mean dgemm_?)")
}

func TestRegisterIncompatible(t *testing.T) {
	tests := []struct {
		name  string
		fns   map[string]any
		width IndexWidth
	}{
		{"not a function", map[string]any{"dgemm_": 42}, Narrow},
		{"wrong element type", map[string]any{"dgemm_": SgemmLP64(nil)}, Narrow},
		{"wrong width", FromLibrary(kernel.Current(), Narrow), Wide},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.fns, tt.width)
			require.True(t, errors.Is(err, ErrIncompatibleFunction), "%v", err)
			require.False(t, r.IsRegistered())
		})
	}
}

func TestRegisterFuncLiteral(t *testing.T) {
	var calls []gemmCall
	rec := recorder[int32](&calls)
	r := NewRegistry()
	require.NoError(t, r.Register(map[string]any{
		"dgemm_": (func(transA, transB *byte, m, n, k *int32, alpha, a *float64, lda *int32, b *float64, ldb *int32, beta, c *float64, ldc *int32))(rec),
	}, Narrow))
	c := bridge.Zeros[float64](2, 2, bridge.ColMajor)
	require.NoError(t, New(c, c).On(r).Write(c))
	require.Len(t, calls, 1)
}

func TestAvailableFunctions(t *testing.T) {
	lib := FromLibrary(kernel.Current(), Wide)
	r := NewRegistry()
	require.NoError(t, r.Register(map[string]any{
		"dgemm_": lib["dgemm_"],
		"zgemm_": lib["zgemm_"],
		"sgemm_": nil,
	}, Wide))

	got, ok := r.AvailableFunctions()
	require.True(t, ok)
	require.Equal(t, AvailableFunctions{Dgemm: true, Zgemm: true, Width: Wide}, got)
	require.Equal(t, []string{"dgemm_", "zgemm_"}, got.Names())
	require.Equal(t, Wide, r.Backend().Width())
}

func TestRegisterKeepsFirstBackend(t *testing.T) {
	narrow := FromLibrary(kernel.Current(), Narrow)
	wide := FromLibrary(kernel.Current(), Wide)
	r := NewRegistry()
	require.NoError(t, r.Register(map[string]any{"dgemm_": narrow["dgemm_"]}, Narrow))

	err := r.Register(map[string]any{
		"sgemm_": wide["sgemm_"],
		"zgemm_": wide["zgemm_"],
	}, Wide)
	require.True(t, errors.Is(err, ErrAlreadyRegistered), "got %v", err)

	got, ok := r.AvailableFunctions()
	require.True(t, ok)
	require.Equal(t, AvailableFunctions{Dgemm: true, Width: Narrow}, got)
	require.Equal(t, Narrow, r.Backend().Width())

	c, err := New(storages([][]float64{{1, 2}, {3, 4}})["row"], storages([][]float64{{5, 6}, {7, 8}})["row"]).On(r).Eval()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, toRows(c))

	a32 := bridge.Zeros[float32](2, 2, bridge.RowMajor)
	require.PanicsWithError(t, "kernel sgemm_ unavailable: not available in registered LP64 backend", func() {
		_, _ = New(a32, a32).On(r).Eval()
	})
	z := bridge.Zeros[complex128](2, 2, bridge.RowMajor)
	require.PanicsWithError(t, "kernel zgemm_ unavailable: not available in registered LP64 backend", func() {
		_, _ = New(z, z).On(r).Eval()
	})
}

func TestFresh2x2(t *testing.T) {
	want := [][]float64{{19, 22}, {43, 50}}
	for _, width := range []IndexWidth{Narrow, Wide} {
		r := registered(t, width)
		for an, a := range storages([][]float64{{1, 2}, {3, 4}}) {
			for bn, b := range storages([][]float64{{5, 6}, {7, 8}}) {
				c, err := New(a, b).On(r).Eval()
				require.NoError(t, err)
				require.Equal(t, want, toRows(c), "%s a=%s b=%s", width, an, bn)

				for cn, c := range storages([][]float64{{0, 0}, {0, 0}}) {
					require.NoError(t, New(a, b).On(r).Write(c))
					require.Equal(t, want, toRows(c), "%s a=%s b=%s c=%s", width, an, bn, cn)
				}
			}
		}
	}
}

func TestStorageIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := registered(t, Narrow)
	for _, sz := range []struct{ m, n, k int }{{1, 1, 1}, {3, 5, 4}, {6, 2, 7}, {1, 4, 3}} {
		ar, br := randRows(rng, sz.m, sz.k), randRows(rng, sz.k, sz.n)
		want := matmulRef(ar, br)
		for an, a := range storages(ar) {
			for bn, b := range storages(br) {
				for cn, c := range storages(randRows(rng, sz.m, sz.n)) {
					require.NoError(t, New(a, b).On(r).Write(c))
					if diff := cmp.Diff(want, toRows(c), approx); diff != "" {
						t.Errorf("%v a=%s b=%s c=%s mismatch (-want +got):\n%s", sz, an, bn, cn, diff)
					}
				}
			}
		}
	}
}

func TestComplex(t *testing.T) {
	r := registered(t, Wide)
	ar := [][]complex128{{1 + 1i, 2}, {0, 1i}}
	br := [][]complex128{{1, -1i}, {2 + 1i, 3}}
	want := matmulRef(ar, br)
	for an, a := range storages(ar) {
		for bn, b := range storages(br) {
			c, err := New(a, b).On(r).Eval()
			require.NoError(t, err)
			if diff := cmp.Diff(want, toRows(c), approx); diff != "" {
				t.Errorf("a=%s b=%s mismatch (-want +got):\n%s", an, bn, diff)
			}
		}
	}

	a64 := bridge.FromRows([][]complex64{{1i, 1}})
	b64 := bridge.FromRows([][]complex64{{1i}, {2}})
	c64, err := New(a64, b64).On(r).Eval()
	require.NoError(t, err)
	require.Equal(t, [][]complex64{{1}}, toRows(c64))
}

func TestModes(t *testing.T) {
	r := registered(t, Narrow)
	a := bridge.FromRows([][]float64{{1, 2}, {3, 4}})
	b := bridge.FromRows([][]float64{{5, 6}, {7, 8}})

	c := bridge.FromRows([][]float64{{math.NaN(), 1}, {1, 1}})
	require.NoError(t, New(a, b).On(r).Write(c))
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, toRows(c))

	require.NoError(t, New(a, b).On(r).AddTo(c))
	require.Equal(t, [][]float64{{38, 44}, {86, 100}}, toRows(c))

	require.NoError(t, New(a, b).On(r).Scale(2).AddToScaled(c, 0.5))
	require.Equal(t, [][]float64{{57, 66}, {129, 150}}, toRows(c))
}

func TestEmptyInnerDimension(t *testing.T) {
	r := registered(t, Narrow)
	a := bridge.Zeros[float64](2, 0, bridge.RowMajor)
	b := bridge.Zeros[float64](0, 3, bridge.RowMajor)

	c := bridge.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, New(a, b).On(r).AddToScaled(c, 2))
	require.Equal(t, [][]float64{{2, 4, 6}, {8, 10, 12}}, toRows(c))

	require.NoError(t, New(a, b).On(r).Write(c))
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, toRows(c))
}

func TestCallParameters(t *testing.T) {
	var calls []gemmCall
	r := NewRegistry()
	require.NoError(t, r.Register(map[string]any{"dgemm_": recorder[int32](&calls)}, Narrow))

	a := bridge.Zeros[float64](2, 3, bridge.RowMajor)
	b := bridge.Zeros[float64](3, 4, bridge.RowMajor)

	require.NoError(t, New(a, b).On(r).Write(bridge.Zeros[float64](2, 4, bridge.RowMajor)))
	require.NoError(t, New(a, b).On(r).Write(bridge.Zeros[float64](2, 4, bridge.ColMajor)))
	require.Equal(t, []gemmCall{
		// row-major c: b goes first, m and n trade places.
		{TransA: 'N', TransB: 'N', M: 4, N: 2, K: 3, LDA: 4, LDB: 3, LDC: 4},
		// column-major c: row-major operands are passed transposed.
		{TransA: 'T', TransB: 'T', M: 2, N: 4, K: 3, LDA: 3, LDB: 4, LDC: 2},
	}, calls)
}

func TestEmptyOutputMakesNoCall(t *testing.T) {
	var calls []gemmCall
	r := NewRegistry()
	require.NoError(t, r.Register(map[string]any{"dgemm_": recorder[int64](&calls)}, Wide))

	a := bridge.Zeros[float64](0, 3, bridge.RowMajor)
	b := bridge.Zeros[float64](3, 2, bridge.RowMajor)
	c, err := New(a, b).On(r).Eval()
	require.NoError(t, err)
	require.Equal(t, [2]int{0, 2}, c.Shape())
	require.Empty(t, calls)
}

func TestIndexOverflow(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	big := int(math.MaxInt32)
	big++

	var narrow, wide []gemmCall
	rn, rw := NewRegistry(), NewRegistry()
	require.NoError(t, rn.Register(map[string]any{"dgemm_": recorder[int32](&narrow)}, Narrow))
	require.NoError(t, rw.Register(map[string]any{"dgemm_": recorder[int64](&wide)}, Wide))

	// A single row never uses its row stride, which becomes the leading
	// dimension as is.
	a, err := bridge.NewMatrix([]float64{1}, 1, 1, big, 1)
	require.NoError(t, err)
	b := bridge.FromRows([][]float64{{2}})
	c := bridge.FromRows([][]float64{{0}})

	err = New(a, b).On(rn).Write(c)
	require.True(t, errors.Is(err, bridge.ErrIndexOverflow), "%v", err)
	require.Empty(t, narrow)

	require.NoError(t, New(a, b).On(rw).Write(c))
	require.Len(t, wide, 1)
	require.Equal(t, int64(big), wide[0].LDB)
}

func TestUnavailableKernel(t *testing.T) {
	a := bridge.FromRows([][]float32{{1}})
	require.PanicsWithError(t, "kernel sgemm_ unavailable: no BLAS backend registered", func() {
		_, _ = New(a, a).On(NewRegistry()).Eval()
	})

	lib := FromLibrary(kernel.Current(), Narrow)
	r := NewRegistry()
	require.NoError(t, r.Register(map[string]any{"dgemm_": lib["dgemm_"]}, Narrow))
	require.PanicsWithError(t, "kernel sgemm_ unavailable: not available in registered LP64 backend", func() {
		_, _ = New(a, a).On(r).Eval()
	})
}

func TestErrorsBeforeCall(t *testing.T) {
	var calls []gemmCall
	r := NewRegistry()
	require.NoError(t, r.Register(map[string]any{"dgemm_": recorder[int32](&calls)}, Narrow))

	a := bridge.Zeros[float64](2, 3, bridge.RowMajor)
	err := New(a, a).On(r).Write(bridge.Zeros[float64](2, 3, bridge.RowMajor))
	require.True(t, errors.Is(err, bridge.ErrDimensionMismatch))

	strided, err := bridge.NewMatrix(make([]float64, 16), 2, 2, 2, 2)
	require.NoError(t, err)
	err = New(strided, strided).On(r).Write(bridge.Zeros[float64](2, 2, bridge.RowMajor))
	require.True(t, errors.Is(err, bridge.ErrLayout))
	require.Empty(t, calls)
}

func TestParseIndexWidth(t *testing.T) {
	for in, want := range map[string]IndexWidth{"narrow": Narrow, "LP64": Narrow, "wide": Wide, "ilp64": Wide} {
		got, err := ParseIndexWidth(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseIndexWidth("int128")
	require.Error(t, err)
	require.Equal(t, []string{"dgemm_", "zgemm_", "sgemm_", "cgemm_"}, SupportedFunctions())
}

// TestDefaultRegistry is the only test that touches the process-wide
// registry.
func TestDefaultRegistry(t *testing.T) {
	require.NoError(t, Default().Register(FromLibrary(kernel.Current(), Wide), Wide))
	require.True(t, Default().IsRegistered())

	a := bridge.FromRows([][]float64{{1, 2}, {3, 4}})
	b := bridge.FromRows([][]float64{{5, 6}, {7, 8}})
	c, err := Fresh(1, a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, toRows(c))
	require.Equal(t, bridge.ColMajor, orientation(c))

	require.NoError(t, Write(2, a, b, c))
	require.Equal(t, [][]float64{{38, 44}, {86, 100}}, toRows(c))
	require.NoError(t, Gemm(1, a, b, -1, c))
	require.Equal(t, [][]float64{{-19, -22}, {-43, -50}}, toRows(c))
}

func orientation(m bridge.Matrix[float64]) bridge.Order {
	o, err := bridge.Orientation("test", "c", m)
	if err != nil {
		panic(err)
	}
	return o
}
