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

// Package inject dispatches gemm through Fortran entry points registered
// at run time.
//
// A host process that already links a BLAS (a Python runtime, a vendor
// library) can hand its sgemm_, dgemm_, cgemm_ and zgemm_ symbols to this
// package once, and every later dispatch calls them directly:
//
//	err := inject.Default().Register(map[string]any{
//		"dgemm_": dgemmPtr, // unsafe.Pointer, uintptr or a Go GemmFunc value
//	}, inject.Narrow)
//	c, err := inject.Fresh(1.0, a, b)
//
// Registration is write-once. The first successful Register wins; later
// calls fail with ErrAlreadyRegistered. Lookups after registration take no
// locks.
//
// The injected routines follow the Fortran calling convention: every
// argument by pointer and column-major storage only. Row-major calls are
// rewritten into the transposed column-major problem before the call.
package inject

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-blasbridge/bridge"
)

// GemmFunc is the Fortran gemm entry point for element type T and index type I:
//
//	C = alpha*op(A)*op(B) + beta*C
//
// with A, B and C column-major and op selected by the characters 'N', 'T'
// and 'C'.
type GemmFunc[T bridge.Scalar, I int32 | int64] func(transA, transB *byte, m, n, k *I, alpha, a *T, lda *I, b *T, ldb *I, beta, c *T, ldc *I)

// Entry points of the 32-bit index ABI.
type (
	SgemmLP64 = GemmFunc[float32, int32]
	DgemmLP64 = GemmFunc[float64, int32]
	CgemmLP64 = GemmFunc[complex64, int32]
	ZgemmLP64 = GemmFunc[complex128, int32]
)

// Entry points of the 64-bit index ABI.
type (
	SgemmILP64 = GemmFunc[float32, int64]
	DgemmILP64 = GemmFunc[float64, int64]
	CgemmILP64 = GemmFunc[complex64, int64]
	ZgemmILP64 = GemmFunc[complex128, int64]
)

// IndexWidth is the integer width of dimension and stride arguments.
type IndexWidth uint8

const (
	// Narrow passes 32-bit integers (LP64).
	Narrow IndexWidth = iota
	// Wide passes 64-bit integers (ILP64).
	Wide
)

func (w IndexWidth) String() string {
	switch w {
	case Narrow:
		return "LP64"
	case Wide:
		return "ILP64"
	default:
		return fmt.Sprintf("IndexWidth(%d)", uint8(w))
	}
}

// ParseIndexWidth accepts "narrow", "lp64", "wide" and "ilp64".
func ParseIndexWidth(s string) (IndexWidth, error) {
	switch s {
	case "narrow", "lp64", "LP64":
		return Narrow, nil
	case "wide", "ilp64", "ILP64":
		return Wide, nil
	default:
		return 0, errors.Errorf("inject: unknown index width %q", s)
	}
}

// supported lists the accepted routine names in registration report order.
var supported = [...]string{"dgemm_", "zgemm_", "sgemm_", "cgemm_"}

// SupportedFunctions returns the routine names Register accepts.
func SupportedFunctions() []string {
	return append([]string(nil), supported[:]...)
}

// kindOf maps a routine name to the scalar kind it serves.
func kindOf(name string) (bridge.ScalarKind, bool) {
	switch name {
	case "sgemm_":
		return bridge.RealSingle, true
	case "dgemm_":
		return bridge.RealDouble, true
	case "cgemm_":
		return bridge.ComplexSingle, true
	case "zgemm_":
		return bridge.ComplexDouble, true
	}
	return 0, false
}
