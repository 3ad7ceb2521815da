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

// Uninit is freshly allocated output storage that a library call has not
// written yet. Its contents are not observable until Promote, which may only
// follow MarkPopulated.
type Uninit[T Scalar] struct {
	m         Matrix[T]
	populated bool
	promoted  bool
}

// NewUninit allocates rows x cols elements in the given order.
func NewUninit[T Scalar](rows, cols int, order Order) *Uninit[T] {
	return &Uninit[T]{m: Zeros[T](rows, cols, order)}
}

// Target returns the view the library call writes into.
func (u *Uninit[T]) Target() Matrix[T] {
	if u.promoted {
		panic(InvariantViolation("uninitialized output used after promotion"))
	}
	return u.m
}

// MarkPopulated records that a call has written every element of Target.
func (u *Uninit[T]) MarkPopulated() {
	u.populated = true
}

// Promote returns the populated matrix. Promoting storage that no call has
// written, or promoting twice, is a defect in the caller and panics.
func (u *Uninit[T]) Promote() Matrix[T] {
	if !u.populated {
		panic(InvariantViolation("promoting output that was never populated"))
	}
	if u.promoted {
		panic(InvariantViolation("output promoted twice"))
	}
	u.promoted = true
	return u.m
}
