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

import (
	"github.com/ajroetker/go-blasbridge/bridge"
	"github.com/ajroetker/go-blasbridge/bridge/kernel"
)

// Symm computes c = alpha*a*b + beta*c (side Left) or c = alpha*b*a + beta*c
// (side Right) for a symmetric a of which only the tri triangle is read.
func Symm[T bridge.Scalar](side bridge.Side, tri bridge.Uplo, alpha T, a, b bridge.Matrix[T], beta T, c bridge.Matrix[T]) error {
	return structured("symm", bridge.Symmetric, side, tri, alpha, a, b, beta, c)
}

// Hemm is Symm for a Hermitian a. For real kinds it is Symm.
func Hemm[T bridge.Scalar](side bridge.Side, tri bridge.Uplo, alpha T, a, b bridge.Matrix[T], beta T, c bridge.Matrix[T]) error {
	return structured("hemm", bridge.Hermitian, side, tri, alpha, a, b, beta, c)
}

// structured dispatches symm or hemm. The library takes neither operand
// transposed, so an operand stored in the other order is handled before the
// call: a symmetric a read in the other order is itself with the triangles
// exchanged; a Hermitian a and a general b are staged into the call order.
func structured[T bridge.Scalar](op string, typ bridge.Structure, side bridge.Side, tri bridge.Uplo, alpha T, a, b bridge.Matrix[T], beta T, c bridge.Matrix[T]) error {
	l, err := bridge.ResolveStructured(op, side, a, b, c)
	if err != nil {
		return err
	}
	if l.M == 0 || l.N == 0 {
		return nil
	}
	k := kernel.For[T]()
	if l.TransB != bridge.NoTrans {
		b, l.LDB = stage(k, b, l.Order)
	}
	if l.TransA != bridge.NoTrans {
		if typ == bridge.Symmetric || !k.Kind().IsComplex() {
			tri = flipUplo(tri)
		} else {
			a, l.LDA = stage(k, a, l.Order)
		}
	}
	if typ == bridge.Hermitian {
		k.Hemm(l.Order, side, tri, l.M, l.N, alpha, a.Data(), l.LDA, b.Data(), l.LDB, beta, c.Data(), l.LDC)
		return nil
	}
	k.Symm(l.Order, side, tri, l.M, l.N, alpha, a.Data(), l.LDA, b.Data(), l.LDB, beta, c.Data(), l.LDC)
	return nil
}

// Trmm computes b = alpha*a*b (side Left) or b = alpha*b*a (side Right) in
// place for a triangular a of which only the tri triangle is read.
func Trmm[T bridge.Scalar](side bridge.Side, tri bridge.Uplo, alpha T, a, b bridge.Matrix[T]) error {
	l, err := bridge.ResolveStructured("trmm", side, a, b, b)
	if err != nil {
		return err
	}
	if l.M == 0 || l.N == 0 {
		return nil
	}
	// Read in the other order a is its transpose, whose other triangle
	// holds the data.
	if l.TransA != bridge.NoTrans {
		tri = flipUplo(tri)
	}
	kernel.For[T]().Trmm(l.Order, side, tri, l.TransA, bridge.NonUnit, l.M, l.N,
		alpha, a.Data(), l.LDA, b.Data(), l.LDC)
	return nil
}

// Special returns a product in new storage where a is a square structured
// factor of which only the tri triangle is read: alpha*a*b for side Left
// and alpha*b*a for side Right. The result has the shape of b.
//
// The triangular case has no out-of-place library routine. b is copied
// into a working buffer, multiplied in place, and the working buffer is
// copied into the returned result.
func Special[T bridge.Scalar](side bridge.Side, typ bridge.Structure, tri bridge.Uplo, alpha T, a, b bridge.Matrix[T]) (bridge.Matrix[T], error) {
	op := opName(typ)
	if _, err := bridge.ResolveStructured(op, side, a, b, b); err != nil {
		return bridge.Matrix[T]{}, err
	}
	order, err := bridge.Orientation(op, "b", b)
	if err != nil {
		return bridge.Matrix[T]{}, err
	}

	if typ != bridge.Triangular {
		out := bridge.NewUninit[T](b.Rows(), b.Cols(), order)
		if err := structured(op, typ, side, tri, alpha, a, b, bridge.Zero[T](), out.Target()); err != nil {
			return bridge.Matrix[T]{}, err
		}
		out.MarkPopulated()
		return out.Promote(), nil
	}

	work := bridge.Zeros[T](b.Rows(), b.Cols(), order)
	if err := Copy(work, b); err != nil {
		return bridge.Matrix[T]{}, err
	}
	if err := Trmm(side, tri, alpha, a, work); err != nil {
		return bridge.Matrix[T]{}, err
	}
	out := bridge.NewUninit[T](b.Rows(), b.Cols(), bridge.RowMajor)
	if err := Copy(out.Target(), work); err != nil {
		panic(bridge.InvariantViolation("copying the working buffer: " + err.Error()))
	}
	out.MarkPopulated()
	return out.Promote(), nil
}

func opName(s bridge.Structure) string {
	switch s {
	case bridge.Hermitian:
		return "hemm"
	case bridge.Triangular:
		return "trmm"
	default:
		return "symm"
	}
}

func flipUplo(ul bridge.Uplo) bridge.Uplo {
	if ul == bridge.Upper {
		return bridge.Lower
	}
	return bridge.Upper
}
