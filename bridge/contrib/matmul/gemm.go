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

// Gemm computes c = alpha*a*b + beta*c. With beta zero the prior contents
// of c are ignored; with beta one the product is added to them.
func Gemm[T bridge.Scalar](alpha T, a, b bridge.Matrix[T], beta T, c bridge.Matrix[T]) error {
	return dispatch(bridge.AccumulateScaled, alpha, a, b, beta, c)
}

// Write computes c = alpha*a*b, overwriting c.
func Write[T bridge.Scalar](alpha T, a, b, c bridge.Matrix[T]) error {
	return dispatch(bridge.WriteInto, alpha, a, b, bridge.Zero[T](), c)
}

// Fresh returns alpha*a*b in newly allocated row-major storage.
func Fresh[T bridge.Scalar](alpha T, a, b bridge.Matrix[T]) (bridge.Matrix[T], error) {
	out := bridge.NewUninit[T](a.Rows(), b.Cols(), bridge.RowMajor)
	if err := dispatch(bridge.ProduceFresh, alpha, a, b, bridge.Zero[T](), out.Target()); err != nil {
		return bridge.Matrix[T]{}, err
	}
	out.MarkPopulated()
	return out.Promote(), nil
}

func dispatch[T bridge.Scalar](mode bridge.Mode, alpha T, a, b bridge.Matrix[T], beta T, c bridge.Matrix[T]) error {
	l, err := bridge.ResolveGemm("gemm", a, b, c)
	if err != nil {
		return err
	}
	beta = bridge.Beta(mode, beta)
	k := kernel.For[T]()
	switch {
	case l.M == 0 || l.N == 0:
	case l.K == 0:
		// The library may reject the empty operands; c = beta*c is all that
		// remains of the product.
		scale(k, beta, c)
	default:
		k.Gemm(l.Order, l.TransA, l.TransB, l.M, l.N, l.K,
			alpha, a.Data(), l.LDA, b.Data(), l.LDB, beta, c.Data(), l.LDC)
	}
	return nil
}

// scale multiplies every element of c by beta. A zero beta overwrites c,
// as the library does, so NaNs in the prior contents do not survive.
func scale[T bridge.Scalar](k kernel.Binding[T], beta T, c bridge.Matrix[T]) {
	if beta == bridge.Zero[T]() {
		c.Fill(beta)
		return
	}
	forEachLine(c, func(line bridge.Vector[T]) {
		k.Scal(line.Len(), beta, line.Data(), inc(line))
	})
}
