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

// Package matmul dispatches matrix-matrix products to the bound BLAS
// library.
//
// Every operation resolves the layout of its operands first and returns a
// *bridge.LayoutError or *bridge.DimensionMismatch without touching the
// library if the views cannot be described by an order and leading
// dimensions. A valid dispatch performs a single library call:
//
//	a := bridge.Dense([]float64{1, 2, 3, 4}, 2, 2, bridge.RowMajor)
//	b := bridge.Dense([]float64{5, 7, 6, 8}, 2, 2, bridge.ColMajor)
//	c, err := matmul.Fresh(1, a, b) // [[19 22] [43 50]]
//
// Three output modes are offered: Write overwrites a caller supplied
// destination, Fresh allocates and returns it, and Gemm scales the prior
// destination by beta before accumulating. Symmetric, Hermitian and
// triangular operands go through Symm, Hemm, Trmm and Special.
package matmul
