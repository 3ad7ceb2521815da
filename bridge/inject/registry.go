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

package inject

import (
	"fmt"
	"slices"
	"sync/atomic"
	"unsafe"

	"github.com/agnivade/levenshtein"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ajroetker/go-blasbridge/bridge"
)

var (
	// ErrAlreadyRegistered is returned by Register once a backend is in place.
	ErrAlreadyRegistered = errors.New("BLAS backend already registered")

	// ErrUnknownFunction is returned for a routine name outside
	// SupportedFunctions.
	ErrUnknownFunction = errors.New("unknown BLAS function")

	// ErrIncompatibleFunction is returned for a value that cannot be called
	// as the named routine.
	ErrIncompatibleFunction = errors.New("incompatible BLAS function")
)

// RegistrationError describes a rejected Register call. Kind is one of the
// Err* sentinels above.
type RegistrationError struct {
	Kind   error
	Name   string // offending routine name, empty for ErrAlreadyRegistered
	Hint   string // closest supported name, if any
	Detail string
}

func (e *RegistrationError) Error() string {
	switch {
	case e.Kind == ErrUnknownFunction && e.Hint != "":
		return fmt.Sprintf("unknown BLAS function: %s (did you mean %s?)", e.Name, e.Hint)
	case e.Kind == ErrUnknownFunction:
		return "unknown BLAS function: " + e.Name
	case e.Name != "":
		return fmt.Sprintf("%v: %s: %s", e.Kind, e.Name, e.Detail)
	default:
		return e.Kind.Error()
	}
}

// Unwrap returns Kind.
func (e *RegistrationError) Unwrap() error { return e.Kind }

// Backend is an immutable set of registered entry points.
type Backend struct {
	width IndexWidth
	fns   [bridge.NumKinds]any // GemmFunc[T, int32] or GemmFunc[T, int64], nil if absent
}

// Width returns the index width the backend was registered with.
func (b *Backend) Width() IndexWidth { return b.width }

// Has reports whether the routine for kind was registered.
func (b *Backend) Has(kind bridge.ScalarKind) bool {
	return b.fns[kind] != nil
}

// AvailableFunctions reports which routines a backend provides.
type AvailableFunctions struct {
	Sgemm, Dgemm, Cgemm, Zgemm bool
	Width                      IndexWidth
}

// Names returns the registered routine names in SupportedFunctions order.
func (a AvailableFunctions) Names() []string {
	return lo.Filter(supported[:], func(name string, _ int) bool {
		switch name {
		case "sgemm_":
			return a.Sgemm
		case "dgemm_":
			return a.Dgemm
		case "cgemm_":
			return a.Cgemm
		default:
			return a.Zgemm
		}
	})
}

// Registry holds at most one Backend. The zero value is an empty registry.
type Registry struct {
	backend atomic.Pointer[Backend]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by Gemm, Write and Fresh.
func Default() *Registry {
	return defaultRegistry
}

// Register installs the routines in fns. Keys must come from
// SupportedFunctions; values may be a GemmFunc of the matching element type and
// width, an equivalent func literal, or a raw C function pointer
// (unsafe.Pointer or uintptr, cgo builds only). A nil value marks the
// routine absent.
//
// The backend is validated in full before it is published, so a rejected
// call registers nothing. Of several concurrent calls exactly one succeeds.
func (r *Registry) Register(fns map[string]any, width IndexWidth) error {
	if r.backend.Load() != nil {
		return r.reject(&RegistrationError{Kind: ErrAlreadyRegistered})
	}
	b := &Backend{width: width}
	names := lo.Keys(fns)
	slices.Sort(names)
	for _, name := range names {
		kind, ok := kindOf(name)
		if !ok {
			return r.reject(&RegistrationError{Kind: ErrUnknownFunction, Name: name, Hint: closest(name)})
		}
		fn, err := bind(kind, width, name, fns[name])
		if err != nil {
			return r.reject(err)
		}
		b.fns[kind] = fn
	}
	if !r.backend.CompareAndSwap(nil, b) {
		return r.reject(&RegistrationError{Kind: ErrAlreadyRegistered})
	}
	log.Debug().
		Str("width", width.String()).
		Strs("functions", r.report(b).Names()).
		Msg("BLAS backend registered")
	return nil
}

func (r *Registry) reject(err error) error {
	log.Debug().Err(err).Msg("BLAS backend registration rejected")
	return errors.WithStack(err)
}

// IsRegistered reports whether a backend is in place.
func (r *Registry) IsRegistered() bool {
	return r.backend.Load() != nil
}

// Backend returns the registered backend, or nil.
func (r *Registry) Backend() *Backend {
	return r.backend.Load()
}

// AvailableFunctions reports the registered routines. The second result is
// false if nothing is registered.
func (r *Registry) AvailableFunctions() (AvailableFunctions, bool) {
	b := r.backend.Load()
	if b == nil {
		return AvailableFunctions{}, false
	}
	return r.report(b), true
}

func (r *Registry) report(b *Backend) AvailableFunctions {
	return AvailableFunctions{
		Sgemm: b.Has(bridge.RealSingle),
		Dgemm: b.Has(bridge.RealDouble),
		Cgemm: b.Has(bridge.ComplexSingle),
		Zgemm: b.Has(bridge.ComplexDouble),
		Width: b.width,
	}
}

// closest returns the supported name within two edits of name, if any.
func closest(name string) string {
	best, dist := "", 3
	for _, s := range supported {
		if d := levenshtein.ComputeDistance(name, s); d < dist {
			best, dist = s, d
		}
	}
	return best
}

func bind(kind bridge.ScalarKind, width IndexWidth, name string, v any) (any, error) {
	if width == Wide {
		return bindKind[int64](kind, name, v)
	}
	return bindKind[int32](kind, name, v)
}

func bindKind[I int32 | int64](kind bridge.ScalarKind, name string, v any) (any, error) {
	switch kind {
	case bridge.RealSingle:
		return bindGemm[float32, I](name, v)
	case bridge.RealDouble:
		return bindGemm[float64, I](name, v)
	case bridge.ComplexSingle:
		return bindGemm[complex64, I](name, v)
	default:
		return bindGemm[complex128, I](name, v)
	}
}

// bindGemm converts v into a GemmFunc[T, I]. An absent routine is returned as
// an untyped nil so Backend.Has stays accurate.
func bindGemm[T bridge.Scalar, I int32 | int64](name string, v any) (any, error) {
	var fn GemmFunc[T, I]
	switch f := v.(type) {
	case nil:
		return nil, nil
	case GemmFunc[T, I]:
		fn = f
	case func(transA, transB *byte, m, n, k *I, alpha, a *T, lda *I, b *T, ldb *I, beta, c *T, ldc *I):
		fn = f
	case unsafe.Pointer:
		if !cgoEnabled {
			return nil, incompatible(name, "raw function pointers need a cgo build")
		}
		if f == nil {
			return nil, nil
		}
		fn = fromPointer[T, I](f)
	case uintptr:
		if !cgoEnabled {
			return nil, incompatible(name, "raw function pointers need a cgo build")
		}
		if f == 0 {
			return nil, nil
		}
		fn = fromPointer[T, I](unsafe.Pointer(f))
	default:
		return nil, incompatible(name, fmt.Sprintf("have %T, want %T", v, GemmFunc[T, I](nil)))
	}
	if fn == nil {
		return nil, nil
	}
	return fn, nil
}

func incompatible(name, detail string) error {
	return &RegistrationError{Kind: ErrIncompatibleFunction, Name: name, Detail: detail}
}
