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
	"github.com/pkg/errors"

	"github.com/ajroetker/go-blasbridge/bridge"
)

// MatVec describes the product alpha*a*x.
type MatVec[T bridge.Scalar] struct {
	alpha T
	a     bridge.Matrix[T]
	x     bridge.Vector[T]
}

// New starts a product of a and x with alpha one.
func New[T bridge.Scalar](a bridge.Matrix[T], x bridge.Vector[T]) MatVec[T] {
	return MatVec[T]{alpha: bridge.One[T](), a: a, x: x}
}

// Scale multiplies alpha by f.
func (mv MatVec[T]) Scale(f T) MatVec[T] {
	mv.alpha *= f
	return mv
}

// Eval returns the product in new storage.
func (mv MatVec[T]) Eval() (bridge.Vector[T], error) {
	return Fresh(mv.alpha, mv.a, mv.x)
}

// Write overwrites y with the product.
func (mv MatVec[T]) Write(y bridge.Vector[T]) error {
	return Write(mv.alpha, mv.a, mv.x, y)
}

// AddTo adds the product to y.
func (mv MatVec[T]) AddTo(y bridge.Vector[T]) error {
	return Gemv(mv.alpha, mv.a, mv.x, bridge.One[T](), y)
}

// AddToScaled sets y to the product plus beta*y.
func (mv MatVec[T]) AddToScaled(y bridge.Vector[T], beta T) error {
	return Gemv(mv.alpha, mv.a, mv.x, beta, y)
}

// OuterProduct describes the rank-1 matrix alpha*x*yᵀ.
type OuterProduct[T bridge.Scalar] struct {
	alpha T
	x, y  bridge.Vector[T]
}

// Outer starts the outer product of x and y with alpha one.
func Outer[T bridge.Scalar](x, y bridge.Vector[T]) OuterProduct[T] {
	return OuterProduct[T]{alpha: bridge.One[T](), x: x, y: y}
}

// Scale multiplies alpha by f.
func (o OuterProduct[T]) Scale(f T) OuterProduct[T] {
	o.alpha *= f
	return o
}

// Eval returns the outer product in new row-major storage.
func (o OuterProduct[T]) Eval() (bridge.Matrix[T], error) {
	a := bridge.Zeros[T](o.x.Len(), o.y.Len(), bridge.RowMajor)
	if err := Ger(o.alpha, o.x, o.y, a); err != nil {
		return bridge.Matrix[T]{}, err
	}
	return a, nil
}

// Write overwrites a with the outer product.
func (o OuterProduct[T]) Write(a bridge.Matrix[T]) error {
	if _, err := bridge.ResolveRankOne("ger", a, o.x, o.y); err != nil {
		return err
	}
	a.Fill(bridge.Zero[T]())
	return Ger(o.alpha, o.x, o.y, a)
}

// AddTo adds the outer product to a.
func (o OuterProduct[T]) AddTo(a bridge.Matrix[T]) error {
	return Ger(o.alpha, o.x, o.y, a)
}

// AddToSpecial adds the outer product to a structured a. Symmetric and
// Hermitian updates use x alone and touch only the tri triangle; the
// Hermitian update uses the real part of alpha. Triangular falls back to
// the general update.
func (o OuterProduct[T]) AddToSpecial(a bridge.Matrix[T], typ bridge.Structure, tri bridge.Uplo) error {
	switch typ {
	case bridge.Symmetric:
		return Syr(tri, o.alpha, o.x, a)
	case bridge.Hermitian:
		return Her(tri, bridge.RealPart(o.alpha), o.x, a)
	case bridge.Triangular:
		return Ger(o.alpha, o.x, o.y, a)
	default:
		return errors.Wrapf(bridge.ErrUnsupported, "outer: structure %s", typ)
	}
}
