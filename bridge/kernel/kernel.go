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

// Package kernel binds each scalar kind to the statically linked BLAS
// library.
//
// The library is any value implementing the four gonum blas interfaces.
// The pure Go gonum implementation is linked by default; building with
// -tags netlib (and cgo) links the system CBLAS instead. Either can be
// replaced with Use before the first dispatch.
//
// The bound libraries only understand row-major storage. A binding receives
// the call order chosen by the layout resolver and rewrites column-major
// calls into the equivalent row-major call on the transposed problem, so
// the library always sees one call with valid parameters.
package kernel

//go:generate go run ../../cmd/bindgen -o zz_binding.go

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/ajroetker/go-blasbridge/bridge"
)

// Library is a complete BLAS implementation for the four scalar kinds.
type Library interface {
	blas.Float32
	blas.Float64
	blas.Complex64
	blas.Complex128
}

type holder struct{ lib Library }

var current atomic.Pointer[holder]

func init() {
	current.Store(&holder{lib: defaultLibrary()})
}

// Use replaces the statically linked library. The gonum blas32 and blas64
// package level implementations are switched along with it.
func Use(lib Library) {
	if lib == nil {
		panic("kernel: nil library")
	}
	current.Store(&holder{lib: lib})
	blas32.Use(lib)
	blas64.Use(lib)
	log.Debug().Str("library", Name()).Msg("BLAS library selected")
}

// Current returns the library bindings dispatch through.
func Current() Library {
	return current.Load().lib
}

// Name returns a short description of the current library.
func Name() string {
	return fmt.Sprintf("%T", Current())
}

// Binding is the set of entry points for one scalar kind. Matrix entry
// points take the storage order of the call; vector entry points do not
// care. Every method performs exactly one library call, except column-major
// conjugated rank-1 updates, which also stage a conjugated copy of one
// vector.
type Binding[T bridge.Scalar] interface {
	Kind() bridge.ScalarKind

	Gemm(o bridge.Order, tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Symm(o bridge.Order, s blas.Side, ul blas.Uplo, m, n int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Hemm(o bridge.Order, s blas.Side, ul blas.Uplo, m, n int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Trmm(o bridge.Order, s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha T, a []T, lda int, b []T, ldb int)

	Gemv(o bridge.Order, tA blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)
	Ger(o bridge.Order, m, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int)
	Gerc(o bridge.Order, m, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int)
	Syr(o bridge.Order, ul blas.Uplo, n int, alpha T, x []T, incX int, a []T, lda int)
	Her(o bridge.Order, ul blas.Uplo, n int, alpha float64, x []T, incX int, a []T, lda int)

	Axpy(n int, alpha T, x []T, incX int, y []T, incY int)
	Scal(n int, alpha T, x []T, incX int)
	Copy(n int, x []T, incX int, y []T, incY int)
	Swap(n int, x []T, incX int, y []T, incY int)
	Dot(n int, x []T, incX int, y []T, incY int) T
	Dotc(n int, x []T, incX int, y []T, incY int) T
	Nrm2(n int, x []T, incX int) float64
	Asum(n int, x []T, incX int) float64
	Iamax(n int, x []T, incX int) int
}

// For returns the binding for T over the current library.
func For[T bridge.Scalar]() Binding[T] {
	return ForLibrary[T](Current())
}

// ForLibrary returns the binding for T over lib.
func ForLibrary[T bridge.Scalar](lib Library) Binding[T] {
	var b any
	switch bridge.KindOf[T]() {
	case bridge.RealSingle:
		b = Float32Binding{lib: lib}
	case bridge.RealDouble:
		b = Float64Binding{lib: lib}
	case bridge.ComplexSingle:
		b = Complex64Binding{lib: lib}
	default:
		b = Complex128Binding{lib: lib}
	}
	return b.(Binding[T])
}

// RoutineName returns the conventional Fortran name of a routine for kind,
// e.g. RoutineName(bridge.RealDouble, "gemm") is "dgemm_".
func RoutineName(kind bridge.ScalarKind, routine string) string {
	return string(kind.Prefix()) + routine + "_"
}

func unavailable(name, reason string) {
	panic(&bridge.UnavailableKernelError{Name: name, Reason: reason})
}
