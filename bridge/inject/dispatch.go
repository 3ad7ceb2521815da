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

	"github.com/pkg/errors"

	"github.com/ajroetker/go-blasbridge/bridge"
)

// Gemm computes c = alpha*a*b + beta*c through the default registry.
func Gemm[T bridge.Scalar](alpha T, a, b bridge.Matrix[T], beta T, c bridge.Matrix[T]) error {
	return dispatch(defaultRegistry, bridge.AccumulateScaled, alpha, a, b, beta, c)
}

// Write computes c = alpha*a*b through the default registry, overwriting c.
func Write[T bridge.Scalar](alpha T, a, b, c bridge.Matrix[T]) error {
	return dispatch(defaultRegistry, bridge.WriteInto, alpha, a, b, bridge.Zero[T](), c)
}

// Fresh returns alpha*a*b in new column-major storage, computed through the
// default registry.
func Fresh[T bridge.Scalar](alpha T, a, b bridge.Matrix[T]) (bridge.Matrix[T], error) {
	return fresh(defaultRegistry, alpha, a, b)
}

func fresh[T bridge.Scalar](r *Registry, alpha T, a, b bridge.Matrix[T]) (bridge.Matrix[T], error) {
	out := bridge.NewUninit[T](a.Rows(), b.Cols(), bridge.ColMajor)
	if err := dispatch(r, bridge.ProduceFresh, alpha, a, b, bridge.Zero[T](), out.Target()); err != nil {
		return bridge.Matrix[T]{}, err
	}
	out.MarkPopulated()
	return out.Promote(), nil
}

// dispatch resolves the layout, rewrites it for column-major storage and
// makes exactly one call to the registered routine. Empty outputs make no
// call. A missing backend or routine panics with
// *bridge.UnavailableKernelError.
func dispatch[T bridge.Scalar](r *Registry, mode bridge.Mode, alpha T, a, b bridge.Matrix[T], beta T, c bridge.Matrix[T]) error {
	l, err := bridge.ResolveGemm("gemm", a, b, c)
	if err != nil {
		return err
	}
	beta = bridge.Beta(mode, beta)
	be := r.backend.Load()
	if be == nil {
		panic(&bridge.UnavailableKernelError{
			Name:   routine[T](),
			Reason: "no BLAS backend registered",
		})
	}
	cm := l.ColumnMajor()
	pa, pb := a.Data(), b.Data()
	if cm.Swapped {
		pa, pb = pb, pa
	}
	if be.width == Wide {
		return call[T, int64](be, cm, alpha, pa, pb, beta, c.Data())
	}
	return call[T, int32](be, cm, alpha, pa, pb, beta, c.Data())
}

func call[T bridge.Scalar, I int32 | int64](be *Backend, l bridge.ColumnMajorGemm, alpha T, a, b []T, beta T, c []T) error {
	var dims [6]I
	for i, v := range [6]int{l.M, l.N, l.K, l.LDA, l.LDB, l.LDC} {
		x, err := index[I](v)
		if err != nil {
			return err
		}
		dims[i] = x
	}
	fn := lookup[T, I](be)
	if l.M == 0 || l.N == 0 {
		return nil
	}
	ta, tb := byte(l.TransA), byte(l.TransB)
	fn(&ta, &tb, &dims[0], &dims[1], &dims[2],
		&alpha, first(a), &dims[3], first(b), &dims[4],
		&beta, first(c), &dims[5])
	return nil
}

// index narrows v to the integer width of the ABI.
func index[I int32 | int64](v int) (I, error) {
	var zero I
	if _, narrow := any(zero).(int32); narrow && (v > math.MaxInt32 || v < math.MinInt32) {
		return 0, errors.Wrapf(bridge.ErrIndexOverflow, "gemm: %d does not fit a 32-bit index", v)
	}
	return I(v), nil
}

// lookup returns the registered routine for T or panics.
func lookup[T bridge.Scalar, I int32 | int64](be *Backend) GemmFunc[T, I] {
	fn, _ := be.fns[bridge.KindOf[T]()].(GemmFunc[T, I])
	if fn == nil {
		panic(&bridge.UnavailableKernelError{
			Name:   routine[T](),
			Reason: "not available in registered " + be.width.String() + " backend",
		})
	}
	return fn
}

// first returns a pointer to s[0]. The routine never reads an operand it
// has no elements of, but Fortran still wants a valid address.
func first[T bridge.Scalar](s []T) *T {
	if len(s) == 0 {
		return new(T)
	}
	return &s[0]
}

func routine[T bridge.Scalar]() string {
	return string(bridge.KindOf[T]().Prefix()) + "gemm_"
}
