// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo

package inject

/*
#include <stdint.h>

typedef void (*gemm32_fn)(const char*, const char*,
	const int32_t*, const int32_t*, const int32_t*,
	const void*, const void*, const int32_t*, const void*, const int32_t*,
	const void*, void*, const int32_t*);

typedef void (*gemm64_fn)(const char*, const char*,
	const int64_t*, const int64_t*, const int64_t*,
	const void*, const void*, const int64_t*, const void*, const int64_t*,
	const void*, void*, const int64_t*);

static void call_gemm32(void* fn, const char* ta, const char* tb,
	const int32_t* m, const int32_t* n, const int32_t* k,
	const void* alpha, const void* a, const int32_t* lda, const void* b, const int32_t* ldb,
	const void* beta, void* c, const int32_t* ldc) {
	((gemm32_fn)fn)(ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc);
}

static void call_gemm64(void* fn, const char* ta, const char* tb,
	const int64_t* m, const int64_t* n, const int64_t* k,
	const void* alpha, const void* a, const int64_t* lda, const void* b, const int64_t* ldb,
	const void* beta, void* c, const int64_t* ldc) {
	((gemm64_fn)fn)(ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc);
}
*/
import "C"

import (
	"unsafe"

	"github.com/ajroetker/go-blasbridge/bridge"
)

const cgoEnabled = true

// fromPointer wraps the C function at p. The Fortran hidden string length
// arguments are not passed; reference and OpenBLAS builds ignore them for
// single character flags.
func fromPointer[T bridge.Scalar, I int32 | int64](p unsafe.Pointer) GemmFunc[T, I] {
	var zero I
	if unsafe.Sizeof(zero) == 4 {
		return func(transA, transB *byte, m, n, k *I, alpha, a *T, lda *I, b *T, ldb *I, beta, c *T, ldc *I) {
			gemm32(p, transA, transB,
				(*int32)(unsafe.Pointer(m)), (*int32)(unsafe.Pointer(n)), (*int32)(unsafe.Pointer(k)),
				unsafe.Pointer(alpha), unsafe.Pointer(a), (*int32)(unsafe.Pointer(lda)),
				unsafe.Pointer(b), (*int32)(unsafe.Pointer(ldb)),
				unsafe.Pointer(beta), unsafe.Pointer(c), (*int32)(unsafe.Pointer(ldc)))
		}
	}
	return func(transA, transB *byte, m, n, k *I, alpha, a *T, lda *I, b *T, ldb *I, beta, c *T, ldc *I) {
		gemm64(p, transA, transB,
			(*int64)(unsafe.Pointer(m)), (*int64)(unsafe.Pointer(n)), (*int64)(unsafe.Pointer(k)),
			unsafe.Pointer(alpha), unsafe.Pointer(a), (*int64)(unsafe.Pointer(lda)),
			unsafe.Pointer(b), (*int64)(unsafe.Pointer(ldb)),
			unsafe.Pointer(beta), unsafe.Pointer(c), (*int64)(unsafe.Pointer(ldc)))
	}
}

func gemm32(p unsafe.Pointer, ta, tb *byte, m, n, k *int32, alpha, a unsafe.Pointer, lda *int32, b unsafe.Pointer, ldb *int32, beta, c unsafe.Pointer, ldc *int32) {
	C.call_gemm32(p, (*C.char)(unsafe.Pointer(ta)), (*C.char)(unsafe.Pointer(tb)),
		(*C.int32_t)(unsafe.Pointer(m)), (*C.int32_t)(unsafe.Pointer(n)), (*C.int32_t)(unsafe.Pointer(k)),
		alpha, a, (*C.int32_t)(unsafe.Pointer(lda)), b, (*C.int32_t)(unsafe.Pointer(ldb)),
		beta, c, (*C.int32_t)(unsafe.Pointer(ldc)))
}

func gemm64(p unsafe.Pointer, ta, tb *byte, m, n, k *int64, alpha, a unsafe.Pointer, lda *int64, b unsafe.Pointer, ldb *int64, beta, c unsafe.Pointer, ldc *int64) {
	C.call_gemm64(p, (*C.char)(unsafe.Pointer(ta)), (*C.char)(unsafe.Pointer(tb)),
		(*C.int64_t)(unsafe.Pointer(m)), (*C.int64_t)(unsafe.Pointer(n)), (*C.int64_t)(unsafe.Pointer(k)),
		alpha, a, (*C.int64_t)(unsafe.Pointer(lda)), b, (*C.int64_t)(unsafe.Pointer(ldb)),
		beta, c, (*C.int64_t)(unsafe.Pointer(ldc)))
}
