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

// Copy copies src into dst with the library's copy routine, one contiguous
// line of src at a time.
func Copy[T bridge.Scalar](dst, src bridge.Matrix[T]) error {
	if dst.Shape() != src.Shape() {
		return bridge.NewDimensionMismatch("copy", "dst is %v but src is %v", dst.Shape(), src.Shape())
	}
	order, err := bridge.Orientation("copy", "src", src)
	if err != nil {
		return err
	}
	if _, err := bridge.LeadingDimension("copy", "src", src, order); err != nil {
		return err
	}
	own, err := bridge.Orientation("copy", "dst", dst)
	if err != nil {
		return err
	}
	if _, err := bridge.LeadingDimension("copy", "dst", dst, own); err != nil {
		return err
	}
	copyLines(kernel.For[T](), dst, src, order)
	return nil
}

// stage copies m into new dense storage in order and returns the copy with
// its leading dimension. m must already have been resolved.
func stage[T bridge.Scalar](k kernel.Binding[T], m bridge.Matrix[T], order bridge.Order) (bridge.Matrix[T], int) {
	out := bridge.Zeros[T](m.Rows(), m.Cols(), order)
	own, err := bridge.Orientation("stage", "src", m)
	if err != nil {
		panic(bridge.InvariantViolation("staging an unresolved operand: " + err.Error()))
	}
	copyLines(k, out, m, own)
	ld := m.Cols()
	if order == bridge.ColMajor {
		ld = m.Rows()
	}
	return out, max(ld, 1)
}

func copyLines[T bridge.Scalar](k kernel.Binding[T], dst, src bridge.Matrix[T], order bridge.Order) {
	if src.Empty() {
		return
	}
	if order == bridge.RowMajor {
		for i := range src.Rows() {
			s, d := src.Row(i), dst.Row(i)
			k.Copy(s.Len(), s.Data(), inc(s), d.Data(), inc(d))
		}
		return
	}
	for j := range src.Cols() {
		s, d := src.Col(j), dst.Col(j)
		k.Copy(s.Len(), s.Data(), inc(s), d.Data(), inc(d))
	}
}

// forEachLine calls fn for every contiguous line of m.
func forEachLine[T bridge.Scalar](m bridge.Matrix[T], fn func(bridge.Vector[T])) {
	if m.Empty() {
		return
	}
	order, err := bridge.Orientation("lines", "m", m)
	if err != nil {
		panic(bridge.InvariantViolation("iterating an unresolved matrix: " + err.Error()))
	}
	if order == bridge.RowMajor {
		for i := range m.Rows() {
			fn(m.Row(i))
		}
		return
	}
	for j := range m.Cols() {
		fn(m.Col(j))
	}
}

func inc[T bridge.Scalar](v bridge.Vector[T]) int {
	if v.Len() <= 1 {
		return 1
	}
	return v.Stride()
}
