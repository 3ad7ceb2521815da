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

// Package bridge maps strided matrix and vector views onto the calling
// convention of a BLAS-class numeric library.
//
// The package does not perform arithmetic. It inspects the strides of the
// views handed to it and decides, before anything crosses into the bound
// library, which storage order the call uses, which transpose flag each
// operand carries, and which leading dimension describes it:
//
//	data := []float64{1, 2, 3, 4}
//	a := bridge.Dense(data, 2, 2, bridge.RowMajor) // [[1 2] [3 4]]
//	at := a.T()                                    // same storage, column-major view
//
//	l, err := bridge.ResolveGemm("gemm", a, at, c)
//	// l.Order, l.TransA, l.TransB, l.LDA ... feed a single library call
//
// The scalar kinds supported are float32, float64, complex64 and complex128.
//
// # Package layout
//
//   - bridge: views, layout resolution, errors, fresh output promotion.
//   - bridge/kernel: per scalar kind bindings to the statically linked
//     library (pure Go gonum by default, system CBLAS with -tags netlib).
//   - bridge/contrib/matmul: matrix-matrix dispatch (gemm, symm, hemm, trmm).
//   - bridge/contrib/matvec: matrix-vector, rank-1 and vector dispatch.
//   - bridge/inject: run-time registration of Fortran gemm entry points
//     and dispatch through them.
//
// # Errors
//
// Layout and dimension problems are reported as *LayoutError and
// *DimensionMismatch before any library call. Conditions that indicate a
// defect in this package, or a kernel that was required but never
// registered, panic.
package bridge
