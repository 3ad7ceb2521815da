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

import "github.com/ajroetker/go-blasbridge/bridge"

// MatMul describes the product alpha*a*b dispatched through a registry:
//
//	c, err := inject.New(a, b).Scale(2).Eval()
//	err = inject.New(a, b).On(r).AddTo(c)
type MatMul[T bridge.Scalar] struct {
	reg   *Registry
	alpha T
	a, b  bridge.Matrix[T]
}

// New starts a product of a and b with alpha one on the default registry.
func New[T bridge.Scalar](a, b bridge.Matrix[T]) MatMul[T] {
	return MatMul[T]{reg: defaultRegistry, alpha: bridge.One[T](), a: a, b: b}
}

// On selects the registry the product is dispatched through.
func (m MatMul[T]) On(r *Registry) MatMul[T] {
	m.reg = r
	return m
}

// Scale multiplies alpha by f.
func (m MatMul[T]) Scale(f T) MatMul[T] {
	m.alpha *= f
	return m
}

// Eval returns the product in new column-major storage.
func (m MatMul[T]) Eval() (bridge.Matrix[T], error) {
	return fresh(m.reg, m.alpha, m.a, m.b)
}

// Write overwrites c with the product.
func (m MatMul[T]) Write(c bridge.Matrix[T]) error {
	return dispatch(m.reg, bridge.WriteInto, m.alpha, m.a, m.b, bridge.Zero[T](), c)
}

// AddTo adds the product to c.
func (m MatMul[T]) AddTo(c bridge.Matrix[T]) error {
	return dispatch(m.reg, bridge.AccumulateScaled, m.alpha, m.a, m.b, bridge.One[T](), c)
}

// AddToScaled sets c to the product plus beta*c.
func (m MatMul[T]) AddToScaled(c bridge.Matrix[T], beta T) error {
	return dispatch(m.reg, bridge.AccumulateScaled, m.alpha, m.a, m.b, beta, c)
}
