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

package bridge

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
)

// Order is the storage order a matrix call is issued in. The values match
// the CBLAS enumeration.
type Order int

const (
	RowMajor Order = 101
	ColMajor Order = 102
)

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Flip returns the other order.
func (o Order) Flip() Order {
	if o == RowMajor {
		return ColMajor
	}
	return RowMajor
}

// Flags shared with the bound library. The byte values are the Fortran
// characters 'N', 'T', 'C', 'U', 'L', 'L', 'R', 'N', 'U'.
type (
	Transpose = blas.Transpose
	Uplo      = blas.Uplo
	Side      = blas.Side
	Diag      = blas.Diag
)

const (
	NoTrans   = blas.NoTrans
	Trans     = blas.Trans
	ConjTrans = blas.ConjTrans

	Upper = blas.Upper
	Lower = blas.Lower

	Left  = blas.Left
	Right = blas.Right

	NonUnit = blas.NonUnit
	Unit    = blas.Unit
)

// Operand is the resolved description of one matrix operand in a given
// call order.
type Operand struct {
	Trans Transpose // NoTrans if the operand is stored in the call order
	LD    int       // leading dimension in the operand's own storage order
}

// Orientation returns the storage order in which m is contiguous. An axis
// is contiguous if its stride is 1 or its extent is at most 1. When both
// axes qualify the matrix is treated as row-major.
func Orientation[T Scalar](op, operand string, m Matrix[T]) (Order, error) {
	switch {
	case m.strides[1] == 1 || m.cols <= 1:
		return RowMajor, nil
	case m.strides[0] == 1 || m.rows <= 1:
		return ColMajor, nil
	default:
		return 0, NewLayoutError(op, operand, m.Shape(), m.strides, "no unit-stride axis")
	}
}

// LeadingDimension returns the stride of the non-unit axis of m when it is
// read in the given order. For a single row (or column) the stride is never
// used and the smallest legal value is returned instead. A stride smaller
// than the inner extent would make rows overlap and is rejected.
func LeadingDimension[T Scalar](op, operand string, m Matrix[T], order Order) (int, error) {
	ld, inner, outer := m.strides[0], m.cols, m.rows
	if order == ColMajor {
		ld, inner, outer = m.strides[1], m.rows, m.cols
	}
	if outer <= 1 || inner == 0 {
		return max(ld, inner, 1), nil
	}
	if ld < inner {
		return 0, NewLayoutError(op, operand, m.Shape(), m.strides,
			fmt.Sprintf("leading dimension %d smaller than %d", ld, inner))
	}
	return ld, nil
}

// ResolveOperand decides how m is passed to a routine called in order.
// An operand stored in the other order is passed with Trans and its own
// leading dimension; no data is copied.
func ResolveOperand[T Scalar](op, operand string, m Matrix[T], order Order) (Operand, error) {
	own, err := Orientation(op, operand, m)
	if err != nil {
		return Operand{}, err
	}
	ld, err := LeadingDimension(op, operand, m, own)
	if err != nil {
		return Operand{}, err
	}
	t := NoTrans
	if own != order {
		t = Trans
	}
	return Operand{Trans: t, LD: ld}, nil
}

// resolveTarget resolves a destination matrix: its own orientation is the
// call order.
func resolveTarget[T Scalar](op string, c Matrix[T]) (Order, int, error) {
	order, err := Orientation(op, "c", c)
	if err != nil {
		return 0, 0, err
	}
	ld, err := LeadingDimension(op, "c", c, order)
	if err != nil {
		return 0, 0, err
	}
	return order, ld, nil
}

// GemmLayout holds the parameters of one C = alpha*op(A)*op(B) + beta*C call
// for a layout-aware routine.
type GemmLayout struct {
	Order          Order
	TransA, TransB Transpose
	M, N, K        int
	LDA, LDB, LDC  int
}

// ResolveGemm checks that a (m x k), b (k x n) and c (m x n) fit together
// and resolves the call parameters. The call order follows c. Shapes are
// checked before strides.
func ResolveGemm[T Scalar](op string, a, b, c Matrix[T]) (GemmLayout, error) {
	if a.cols != b.rows {
		return GemmLayout{}, NewDimensionMismatch(op, "a is %dx%d but b is %dx%d", a.rows, a.cols, b.rows, b.cols)
	}
	if a.rows != c.rows || b.cols != c.cols {
		return GemmLayout{}, NewDimensionMismatch(op, "product is %dx%d but c is %dx%d", a.rows, b.cols, c.rows, c.cols)
	}
	order, ldc, err := resolveTarget(op, c)
	if err != nil {
		return GemmLayout{}, err
	}
	ra, err := ResolveOperand(op, "a", a, order)
	if err != nil {
		return GemmLayout{}, err
	}
	rb, err := ResolveOperand(op, "b", b, order)
	if err != nil {
		return GemmLayout{}, err
	}
	return GemmLayout{
		Order:  order,
		TransA: ra.Trans,
		TransB: rb.Trans,
		M:      a.rows,
		N:      b.cols,
		K:      a.cols,
		LDA:    ra.LD,
		LDB:    rb.LD,
		LDC:    ldc,
	}, nil
}

// ColumnMajorGemm holds the parameters of a gemm call for a column-major
// only routine. When Swapped is set the B operand goes in the A slot and
// the A operand in the B slot.
type ColumnMajorGemm struct {
	TransA, TransB Transpose
	M, N, K        int
	LDA, LDB, LDC  int
	Swapped        bool
}

// ColumnMajor rewrites a row-major layout for a routine that only knows
// column-major storage. A row-major C is a column-major C^T, and
// C^T = op(B)^T op(A)^T, so the operands trade places, carry each other's
// flags and M trades with N. Leading dimensions are unchanged.
func (l GemmLayout) ColumnMajor() ColumnMajorGemm {
	if l.Order == ColMajor {
		return ColumnMajorGemm{
			TransA: l.TransA, TransB: l.TransB,
			M: l.M, N: l.N, K: l.K,
			LDA: l.LDA, LDB: l.LDB, LDC: l.LDC,
		}
	}
	return ColumnMajorGemm{
		TransA: l.TransB, TransB: l.TransA,
		M: l.N, N: l.M, K: l.K,
		LDA: l.LDB, LDB: l.LDA, LDC: l.LDC,
		Swapped: true,
	}
}

// StructuredLayout holds the parameters of a symm, hemm or trmm call. A is
// the square structured operand, B the general one and C the destination
// (B itself for trmm).
type StructuredLayout struct {
	Order          Order
	Side           Side
	TransA, TransB Transpose
	M, N           int
	LDA, LDB, LDC  int
}

// ResolveStructured checks a square a against b (m x n) and c (m x n) for
// side: a is m x m on the left and n x n on the right. The call order
// follows c.
func ResolveStructured[T Scalar](op string, side Side, a, b, c Matrix[T]) (StructuredLayout, error) {
	if a.rows != a.cols {
		return StructuredLayout{}, NewDimensionMismatch(op, "a is %dx%d, want square", a.rows, a.cols)
	}
	if b.rows != c.rows || b.cols != c.cols {
		return StructuredLayout{}, NewDimensionMismatch(op, "b is %dx%d but c is %dx%d", b.rows, b.cols, c.rows, c.cols)
	}
	want := c.rows
	if side == Right {
		want = c.cols
	}
	if a.rows != want {
		return StructuredLayout{}, NewDimensionMismatch(op, "a is %dx%d but %s side needs %d", a.rows, a.cols, sideName(side), want)
	}
	order, ldc, err := resolveTarget(op, c)
	if err != nil {
		return StructuredLayout{}, err
	}
	ra, err := ResolveOperand(op, "a", a, order)
	if err != nil {
		return StructuredLayout{}, err
	}
	rb, err := ResolveOperand(op, "b", b, order)
	if err != nil {
		return StructuredLayout{}, err
	}
	return StructuredLayout{
		Order:  order,
		Side:   side,
		TransA: ra.Trans,
		TransB: rb.Trans,
		M:      c.rows,
		N:      c.cols,
		LDA:    ra.LD,
		LDB:    rb.LD,
		LDC:    ldc,
	}, nil
}

func sideName(s Side) string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Increment returns the increment v is passed with. Vectors of length at
// most one report 1. A zero stride on a longer vector is a broadcast the
// library cannot write through and is rejected.
func Increment[T Scalar](op, operand string, v Vector[T]) (int, error) {
	if v.n <= 1 {
		return 1, nil
	}
	if v.stride == 0 {
		return 0, NewLayoutError(op, operand, [2]int{v.n, 1}, [2]int{0, 1}, "zero stride")
	}
	return v.stride, nil
}

// GemvLayout holds the parameters of one y = alpha*A*x + beta*y call. A is
// passed untransposed in its own order.
type GemvLayout struct {
	Order      Order
	M, N       int
	LDA        int
	IncX, IncY int
}

// ResolveGemv checks a (m x n) against x (n) and y (m).
func ResolveGemv[T Scalar](op string, a Matrix[T], x, y Vector[T]) (GemvLayout, error) {
	if a.cols != x.n || a.rows != y.n {
		return GemvLayout{}, NewDimensionMismatch(op, "a is %dx%d, x has %d and y has %d elements", a.rows, a.cols, x.n, y.n)
	}
	order, err := Orientation(op, "a", a)
	if err != nil {
		return GemvLayout{}, err
	}
	lda, err := LeadingDimension(op, "a", a, order)
	if err != nil {
		return GemvLayout{}, err
	}
	incX, err := Increment(op, "x", x)
	if err != nil {
		return GemvLayout{}, err
	}
	incY, err := Increment(op, "y", y)
	if err != nil {
		return GemvLayout{}, err
	}
	return GemvLayout{Order: order, M: a.rows, N: a.cols, LDA: lda, IncX: incX, IncY: incY}, nil
}

// RankOneLayout holds the parameters of a ger, gerc, syr or her call.
type RankOneLayout struct {
	Order      Order
	M, N       int
	LDA        int
	IncX, IncY int
}

// ResolveRankOne checks a (m x n) against x (m) and y (n).
func ResolveRankOne[T Scalar](op string, a Matrix[T], x, y Vector[T]) (RankOneLayout, error) {
	if a.rows != x.n || a.cols != y.n {
		return RankOneLayout{}, NewDimensionMismatch(op, "a is %dx%d, x has %d and y has %d elements", a.rows, a.cols, x.n, y.n)
	}
	order, lda, err := resolveTarget(op, a)
	if err != nil {
		return RankOneLayout{}, err
	}
	incX, err := Increment(op, "x", x)
	if err != nil {
		return RankOneLayout{}, err
	}
	incY, err := Increment(op, "y", y)
	if err != nil {
		return RankOneLayout{}, err
	}
	return RankOneLayout{Order: order, M: a.rows, N: a.cols, LDA: lda, IncX: incX, IncY: incY}, nil
}

// ResolvePair checks that x and y have the same length and returns their
// increments.
func ResolvePair[T Scalar](op string, x, y Vector[T]) (incX, incY int, err error) {
	if x.n != y.n {
		return 0, 0, NewDimensionMismatch(op, "x has %d and y has %d elements", x.n, y.n)
	}
	if incX, err = Increment(op, "x", x); err != nil {
		return 0, 0, err
	}
	if incY, err = Increment(op, "y", y); err != nil {
		return 0, 0, err
	}
	return incX, incY, nil
}
