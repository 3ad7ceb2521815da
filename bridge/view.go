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

import "fmt"

// Matrix is a borrowed rank-2 view over caller-owned storage.
//
// Element (i, j) lives at data[offset + i*strides[0] + j*strides[1]].
// Strides are in elements and never negative. A Matrix never owns its
// storage; copying a Matrix copies the view, not the data.
type Matrix[T Scalar] struct {
	data    []T
	offset  int
	rows    int
	cols    int
	strides [2]int
}

// NewMatrix returns a view of rows x cols elements of data with the given
// strides. It fails if an extent or stride is negative or if the view
// addresses elements beyond len(data). It does not check contiguity; that
// is decided per operation.
func NewMatrix[T Scalar](data []T, rows, cols, rowStride, colStride int) (Matrix[T], error) {
	shape := [2]int{rows, cols}
	strides := [2]int{rowStride, colStride}
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, NewLayoutError("view", "matrix", shape, strides, "negative extent")
	}
	if rowStride < 0 || colStride < 0 {
		return Matrix[T]{}, NewLayoutError("view", "matrix", shape, strides, "negative stride")
	}
	if rows > 0 && cols > 0 {
		last := (rows-1)*rowStride + (cols-1)*colStride
		if last >= len(data) {
			return Matrix[T]{}, NewLayoutError("view", "matrix", shape, strides,
				fmt.Sprintf("view addresses element %d of %d", last, len(data)))
		}
	}
	return Matrix[T]{data: data, rows: rows, cols: cols, strides: strides}, nil
}

// Dense returns a dense rows x cols view of data in the given order.
// Panics if len(data) < rows*cols.
func Dense[T Scalar](data []T, rows, cols int, order Order) Matrix[T] {
	if len(data) < rows*cols {
		panic("bridge: matrix slice too small")
	}
	if order == ColMajor {
		return Matrix[T]{data: data, rows: rows, cols: cols, strides: [2]int{1, rows}}
	}
	return Matrix[T]{data: data, rows: rows, cols: cols, strides: [2]int{cols, 1}}
}

// Zeros allocates a dense rows x cols matrix in the given order.
func Zeros[T Scalar](rows, cols int, order Order) Matrix[T] {
	return Dense(make([]T, rows*cols), rows, cols, order)
}

// FromRows copies a slice of equal-length rows into a new row-major matrix.
func FromRows[T Scalar](rows [][]T) Matrix[T] {
	if len(rows) == 0 {
		return Dense[T](nil, 0, 0, RowMajor)
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			panic(fmt.Sprintf("bridge: row %d has %d elements, want %d", i, len(r), cols))
		}
		data = append(data, r...)
	}
	return Dense(data, len(rows), cols, RowMajor)
}

// Rows returns the extent of axis 0.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the extent of axis 1.
func (m Matrix[T]) Cols() int { return m.cols }

// Shape returns {rows, cols}.
func (m Matrix[T]) Shape() [2]int { return [2]int{m.rows, m.cols} }

// Stride returns the stride of the given axis in elements.
func (m Matrix[T]) Stride(axis int) int { return m.strides[axis] }

// Strides returns {rowStride, colStride}.
func (m Matrix[T]) Strides() [2]int { return m.strides }

// Empty reports whether the view has no elements.
func (m Matrix[T]) Empty() bool { return m.rows == 0 || m.cols == 0 }

// At returns element (i, j).
func (m Matrix[T]) At(i, j int) T {
	m.check(i, j)
	return m.data[m.index(i, j)]
}

// Set writes element (i, j) into the underlying storage.
func (m Matrix[T]) Set(i, j int, v T) {
	m.check(i, j)
	m.data[m.index(i, j)] = v
}

// Data returns the backing storage starting at element (0, 0). This is the
// slice handed to the library together with the resolved leading dimension.
func (m Matrix[T]) Data() []T {
	if m.offset >= len(m.data) {
		return nil
	}
	return m.data[m.offset:]
}

// T returns the transpose as a view over the same storage.
func (m Matrix[T]) T() Matrix[T] {
	return Matrix[T]{
		data:    m.data,
		offset:  m.offset,
		rows:    m.cols,
		cols:    m.rows,
		strides: [2]int{m.strides[1], m.strides[0]},
	}
}

// Sub returns the rows x cols sub-view whose top-left element is (r0, c0).
// The sub-view keeps the parent's strides, so its leading dimension is the
// parent's, not its own width.
func (m Matrix[T]) Sub(r0, c0, rows, cols int) Matrix[T] {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.rows || c0+cols > m.cols {
		panic(fmt.Sprintf("bridge: sub-view [%d:%d, %d:%d] out of range for %dx%d",
			r0, r0+rows, c0, c0+cols, m.rows, m.cols))
	}
	return Matrix[T]{
		data:    m.data,
		offset:  m.offset + r0*m.strides[0] + c0*m.strides[1],
		rows:    rows,
		cols:    cols,
		strides: m.strides,
	}
}

// Row returns row i as a vector view.
func (m Matrix[T]) Row(i int) Vector[T] {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("bridge: row %d out of range for %dx%d", i, m.rows, m.cols))
	}
	return Vector[T]{data: m.data, offset: m.index(i, 0), n: m.cols, stride: m.strides[1]}
}

// Col returns column j as a vector view.
func (m Matrix[T]) Col(j int) Vector[T] {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("bridge: column %d out of range for %dx%d", j, m.rows, m.cols))
	}
	return Vector[T]{data: m.data, offset: m.index(0, j), n: m.rows, stride: m.strides[0]}
}

// Fill sets every element of the view to v.
func (m Matrix[T]) Fill(v T) {
	for i := range m.rows {
		for j := range m.cols {
			m.data[m.index(i, j)] = v
		}
	}
}

// Elements copies the view into a new row-major slice.
func (m Matrix[T]) Elements() []T {
	out := make([]T, 0, m.rows*m.cols)
	for i := range m.rows {
		for j := range m.cols {
			out = append(out, m.data[m.index(i, j)])
		}
	}
	return out
}

func (m Matrix[T]) index(i, j int) int {
	return m.offset + i*m.strides[0] + j*m.strides[1]
}

func (m Matrix[T]) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("bridge: index (%d, %d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
}

// Vector is a borrowed rank-1 view over caller-owned storage.
type Vector[T Scalar] struct {
	data   []T
	offset int
	n      int
	stride int
}

// NewVector returns a view of n elements of data spaced stride apart.
func NewVector[T Scalar](data []T, n, stride int) (Vector[T], error) {
	shape := [2]int{n, 1}
	strides := [2]int{stride, 1}
	if n < 0 {
		return Vector[T]{}, NewLayoutError("view", "vector", shape, strides, "negative extent")
	}
	if stride < 0 {
		return Vector[T]{}, NewLayoutError("view", "vector", shape, strides, "negative stride")
	}
	if n > 0 && (n-1)*stride >= len(data) {
		return Vector[T]{}, NewLayoutError("view", "vector", shape, strides,
			fmt.Sprintf("view addresses element %d of %d", (n-1)*stride, len(data)))
	}
	return Vector[T]{data: data, n: n, stride: stride}, nil
}

// VectorOf returns a contiguous view of all of data.
func VectorOf[T Scalar](data []T) Vector[T] {
	return Vector[T]{data: data, n: len(data), stride: 1}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return v.n }

// Stride returns the distance between consecutive elements.
func (v Vector[T]) Stride() int { return v.stride }

// At returns element i.
func (v Vector[T]) At(i int) T {
	v.check(i)
	return v.data[v.offset+i*v.stride]
}

// Set writes element i into the underlying storage.
func (v Vector[T]) Set(i int, x T) {
	v.check(i)
	v.data[v.offset+i*v.stride] = x
}

// Data returns the backing storage starting at element 0.
func (v Vector[T]) Data() []T {
	if v.offset >= len(v.data) {
		return nil
	}
	return v.data[v.offset:]
}

// Fill sets every element of the view to x.
func (v Vector[T]) Fill(x T) {
	for i := range v.n {
		v.data[v.offset+i*v.stride] = x
	}
}

// Elements copies the view into a new contiguous slice.
func (v Vector[T]) Elements() []T {
	out := make([]T, v.n)
	for i := range v.n {
		out[i] = v.data[v.offset+i*v.stride]
	}
	return out
}

func (v Vector[T]) check(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("bridge: index %d out of range for length %d", i, v.n))
	}
}
