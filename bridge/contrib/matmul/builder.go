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

package matmul

import "github.com/ajroetker/go-blasbridge/bridge"

// Builder describes the product alpha*a*b and dispatches it in the mode
// selected by its terminal method:
//
//	c, err := matmul.New(a, b).Scale(2).Eval()
//	err = matmul.New(a, b).AddToScaled(c, 0.5)
type Builder[T bridge.Scalar] struct {
	alpha T
	a, b  bridge.Matrix[T]
}

// New starts a product of a and b with alpha one.
func New[T bridge.Scalar](a, b bridge.Matrix[T]) Builder[T] {
	return Builder[T]{alpha: bridge.One[T](), a: a, b: b}
}

// Scale multiplies alpha by f.
func (m Builder[T]) Scale(f T) Builder[T] {
	m.alpha *= f
	return m
}

// Alpha returns the accumulated scale factor.
func (m Builder[T]) Alpha() T { return m.alpha }

// Eval returns the product in new storage.
func (m Builder[T]) Eval() (bridge.Matrix[T], error) {
	return Fresh(m.alpha, m.a, m.b)
}

// Write overwrites c with the product.
func (m Builder[T]) Write(c bridge.Matrix[T]) error {
	return Write(m.alpha, m.a, m.b, c)
}

// AddTo adds the product to c.
func (m Builder[T]) AddTo(c bridge.Matrix[T]) error {
	return Gemm(m.alpha, m.a, m.b, bridge.One[T](), c)
}

// AddToScaled sets c to the product plus beta*c.
func (m Builder[T]) AddToScaled(c bridge.Matrix[T], beta T) error {
	return Gemm(m.alpha, m.a, m.b, beta, c)
}

// Special evaluates the product with a as the structured factor: a*b for
// side Left and b*a for side Right.
func (m Builder[T]) Special(side bridge.Side, typ bridge.Structure, tri bridge.Uplo) (bridge.Matrix[T], error) {
	return Special(side, typ, tri, m.alpha, m.a, m.b)
}
