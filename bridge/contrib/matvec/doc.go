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

// Package matvec dispatches matrix-vector products, rank-1 updates and
// vector reductions to the bound BLAS library.
//
// Like matmul, every entry point resolves strides and shapes before any
// library call and reports *bridge.LayoutError or *bridge.DimensionMismatch
// for views the library cannot take.
package matvec
