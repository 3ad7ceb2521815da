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

// Scalar is the set of element types the bound library understands.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// ScalarKind selects the concrete library entry point for an element type.
type ScalarKind uint8

const (
	RealSingle ScalarKind = iota
	RealDouble
	ComplexSingle
	ComplexDouble
)

// NumKinds is the number of scalar kinds.
const NumKinds = 4

// String returns the Go type name for the kind.
func (k ScalarKind) String() string {
	switch k {
	case RealSingle:
		return "float32"
	case RealDouble:
		return "float64"
	case ComplexSingle:
		return "complex64"
	case ComplexDouble:
		return "complex128"
	default:
		return "unknown"
	}
}

// Prefix returns the conventional BLAS routine prefix: 's', 'd', 'c' or 'z'.
func (k ScalarKind) Prefix() byte {
	switch k {
	case RealSingle:
		return 's'
	case RealDouble:
		return 'd'
	case ComplexSingle:
		return 'c'
	case ComplexDouble:
		return 'z'
	default:
		return '?'
	}
}

// IsComplex reports whether the kind is a complex precision.
func (k ScalarKind) IsComplex() bool {
	return k == ComplexSingle || k == ComplexDouble
}

// ByPointer reports whether alpha and beta cross the C ABI as a pointer to
// a packed real/imaginary pair rather than by value.
func (k ScalarKind) ByPointer() bool {
	return k.IsComplex()
}

// KindOf returns the scalar kind of T.
func KindOf[T Scalar]() ScalarKind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return RealSingle
	case float64:
		return RealDouble
	case complex64:
		return ComplexSingle
	default:
		return ComplexDouble
	}
}

// Zero returns the additive identity of T.
func Zero[T Scalar]() T {
	var zero T
	return zero
}

// One returns the multiplicative identity of T.
func One[T Scalar]() T {
	return T(1)
}

// Conj returns the complex conjugate of v. Real values are returned as is.
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	default:
		return v
	}
}

// RealPart returns the real part of v as a float64.
func RealPart[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	}
	return 0
}
