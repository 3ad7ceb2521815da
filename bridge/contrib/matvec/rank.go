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
	"github.com/ajroetker/go-blasbridge/bridge/kernel"
)

// Ger computes a += alpha*x*yᵀ.
func Ger[T bridge.Scalar](alpha T, x, y bridge.Vector[T], a bridge.Matrix[T]) error {
	l, err := bridge.ResolveRankOne("ger", a, x, y)
	if err != nil {
		return err
	}
	if l.M == 0 || l.N == 0 {
		return nil
	}
	kernel.For[T]().Ger(l.Order, l.M, l.N, alpha, x.Data(), l.IncX, y.Data(), l.IncY, a.Data(), l.LDA)
	return nil
}

// Gerc computes a += alpha*x*yᴴ. For real kinds it is Ger.
func Gerc[T bridge.Scalar](alpha T, x, y bridge.Vector[T], a bridge.Matrix[T]) error {
	l, err := bridge.ResolveRankOne("gerc", a, x, y)
	if err != nil {
		return err
	}
	if l.M == 0 || l.N == 0 {
		return nil
	}
	kernel.For[T]().Gerc(l.Order, l.M, l.N, alpha, x.Data(), l.IncX, y.Data(), l.IncY, a.Data(), l.LDA)
	return nil
}

// Syr computes a += alpha*x*xᵀ on the tri triangle of the square a. The
// bound library has no symmetric rank-1 update for complex kinds; for them
// Syr returns an error wrapping bridge.ErrUnsupported.
func Syr[T bridge.Scalar](tri bridge.Uplo, alpha T, x bridge.Vector[T], a bridge.Matrix[T]) error {
	if kind := bridge.KindOf[T](); kind.IsComplex() {
		return errors.Wrapf(bridge.ErrUnsupported, "syr: no symmetric rank-1 update for %s", kind)
	}
	l, err := resolveSquare("syr", a, x)
	if err != nil {
		return err
	}
	if l.N == 0 {
		return nil
	}
	kernel.For[T]().Syr(l.Order, tri, l.N, alpha, x.Data(), l.IncX, a.Data(), l.LDA)
	return nil
}

// Her computes a += alpha*x*xᴴ on the tri triangle of the square a. For
// real kinds it is Syr.
func Her[T bridge.Scalar](tri bridge.Uplo, alpha float64, x bridge.Vector[T], a bridge.Matrix[T]) error {
	l, err := resolveSquare("her", a, x)
	if err != nil {
		return err
	}
	if l.N == 0 {
		return nil
	}
	kernel.For[T]().Her(l.Order, tri, l.N, alpha, x.Data(), l.IncX, a.Data(), l.LDA)
	return nil
}

func resolveSquare[T bridge.Scalar](op string, a bridge.Matrix[T], x bridge.Vector[T]) (bridge.RankOneLayout, error) {
	if a.Rows() != a.Cols() {
		return bridge.RankOneLayout{}, bridge.NewDimensionMismatch(op, "a is %dx%d, want square", a.Rows(), a.Cols())
	}
	return bridge.ResolveRankOne(op, a, x, x)
}
