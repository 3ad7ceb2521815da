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
	"github.com/ajroetker/go-blasbridge/bridge"
	"github.com/ajroetker/go-blasbridge/bridge/kernel"
)

// Gemv computes y = alpha*a*x + beta*y.
func Gemv[T bridge.Scalar](alpha T, a bridge.Matrix[T], x bridge.Vector[T], beta T, y bridge.Vector[T]) error {
	return gemv(bridge.AccumulateScaled, alpha, a, x, beta, y)
}

// Write computes y = alpha*a*x, overwriting y.
func Write[T bridge.Scalar](alpha T, a bridge.Matrix[T], x, y bridge.Vector[T]) error {
	return gemv(bridge.WriteInto, alpha, a, x, bridge.Zero[T](), y)
}

// Fresh returns alpha*a*x in new storage.
func Fresh[T bridge.Scalar](alpha T, a bridge.Matrix[T], x bridge.Vector[T]) (bridge.Vector[T], error) {
	out := bridge.NewUninit[T](a.Rows(), 1, bridge.ColMajor)
	if err := gemv(bridge.ProduceFresh, alpha, a, x, bridge.Zero[T](), out.Target().Col(0)); err != nil {
		return bridge.Vector[T]{}, err
	}
	out.MarkPopulated()
	return out.Promote().Col(0), nil
}

func gemv[T bridge.Scalar](mode bridge.Mode, alpha T, a bridge.Matrix[T], x bridge.Vector[T], beta T, y bridge.Vector[T]) error {
	l, err := bridge.ResolveGemv("gemv", a, x, y)
	if err != nil {
		return err
	}
	beta = bridge.Beta(mode, beta)
	k := kernel.For[T]()
	switch {
	case l.M == 0:
	case l.N == 0:
		// The library returns early on an empty x without touching y.
		if beta == bridge.Zero[T]() {
			y.Fill(beta)
		} else {
			k.Scal(l.M, beta, y.Data(), l.IncY)
		}
	default:
		k.Gemv(l.Order, bridge.NoTrans, l.M, l.N, alpha, a.Data(), l.LDA, x.Data(), l.IncX, beta, y.Data(), l.IncY)
	}
	return nil
}
