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

	"github.com/pkg/errors"
)

// Sentinels for errors.Is. Every error returned by this module for a bad
// caller input wraps exactly one of them.
var (
	// ErrLayout reports a view that cannot be described by a storage order
	// and a leading dimension.
	ErrLayout = errors.New("layout error")

	// ErrDimensionMismatch reports operand shapes that do not fit together.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOverflow reports a dimension or stride that does not fit the
	// integer width of the target ABI.
	ErrIndexOverflow = errors.New("index overflow")

	// ErrUnsupported reports an operation the scalar kind has no entry point for.
	ErrUnsupported = errors.New("unsupported operation")
)

// LayoutError describes a view that fails the contiguity invariant or whose
// strides would make the library read overlapping rows.
type LayoutError struct {
	Op      string // operation being dispatched
	Operand string // operand role, e.g. "a", "b", "c", "x"
	Shape   [2]int
	Strides [2]int
	Reason  string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: operand %s with shape %v and strides %v: %s",
		e.Op, e.Operand, e.Shape, e.Strides, e.Reason)
}

// Unwrap returns ErrLayout.
func (e *LayoutError) Unwrap() error { return ErrLayout }

// DimensionMismatch describes incompatible operand shapes.
type DimensionMismatch struct {
	Op     string
	Detail string
}

func (e *DimensionMismatch) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: %s", e.Op, e.Detail)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionMismatch) Unwrap() error { return ErrDimensionMismatch }

// NewLayoutError returns a *LayoutError with a stack attached.
func NewLayoutError(op, operand string, shape, strides [2]int, reason string) error {
	return errors.WithStack(&LayoutError{
		Op:      op,
		Operand: operand,
		Shape:   shape,
		Strides: strides,
		Reason:  reason,
	})
}

// NewDimensionMismatch returns a *DimensionMismatch with a stack attached.
func NewDimensionMismatch(op, format string, args ...any) error {
	return errors.WithStack(&DimensionMismatch{
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
	})
}

// UnavailableKernelError is the panic value raised when a dispatch needs an
// entry point that the active backend does not provide.
type UnavailableKernelError struct {
	Name   string // routine name, e.g. "dgemm_"
	Reason string
}

func (e *UnavailableKernelError) Error() string {
	return fmt.Sprintf("kernel %s unavailable: %s", e.Name, e.Reason)
}

// InvariantViolation is the panic value raised when this module's own
// precondition computation was wrong. It never describes caller input.
type InvariantViolation string

func (v InvariantViolation) Error() string {
	return "bridge: internal invariant violated: " + string(v)
}
