// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo

package fortranref

/*
#include <stdint.h>

static int is_trans(char t) { return t == 'T' || t == 't' || t == 'C' || t == 'c'; }
static int is_conj(char t) { return t == 'C' || t == 'c'; }

static void dgemm_ref(char ta, char tb, int64_t m, int64_t n, int64_t k,
	double alpha, const double* a, int64_t lda, const double* b, int64_t ldb,
	double beta, double* c, int64_t ldc) {
	for (int64_t j = 0; j < n; j++) {
		for (int64_t i = 0; i < m; i++) {
			double s = 0;
			for (int64_t p = 0; p < k; p++) {
				double x = is_trans(ta) ? a[p + i*lda] : a[i + p*lda];
				double y = is_trans(tb) ? b[j + p*ldb] : b[p + j*ldb];
				s += x * y;
			}
			double prev = beta == 0 ? 0 : beta * c[i + j*ldc];
			c[i + j*ldc] = alpha*s + prev;
		}
	}
}

// Complex elements are (re, im) pairs of doubles.
static void zgemm_ref(char ta, char tb, int64_t m, int64_t n, int64_t k,
	const double* alpha, const double* a, int64_t lda, const double* b, int64_t ldb,
	const double* beta, double* c, int64_t ldc) {
	for (int64_t j = 0; j < n; j++) {
		for (int64_t i = 0; i < m; i++) {
			double sr = 0, si = 0;
			for (int64_t p = 0; p < k; p++) {
				int64_t ia = is_trans(ta) ? p + i*lda : i + p*lda;
				int64_t ib = is_trans(tb) ? j + p*ldb : p + j*ldb;
				double xr = a[2*ia], xi = is_conj(ta) ? -a[2*ia+1] : a[2*ia+1];
				double yr = b[2*ib], yi = is_conj(tb) ? -b[2*ib+1] : b[2*ib+1];
				sr += xr*yr - xi*yi;
				si += xr*yi + xi*yr;
			}
			int64_t ic = i + j*ldc;
			double pr = 0, pi = 0;
			if (beta[0] != 0 || beta[1] != 0) {
				pr = beta[0]*c[2*ic] - beta[1]*c[2*ic+1];
				pi = beta[0]*c[2*ic+1] + beta[1]*c[2*ic];
			}
			c[2*ic] = alpha[0]*sr - alpha[1]*si + pr;
			c[2*ic+1] = alpha[0]*si + alpha[1]*sr + pi;
		}
	}
}

static void dgemm32(const char* ta, const char* tb, const int32_t* m, const int32_t* n, const int32_t* k,
	const double* alpha, const double* a, const int32_t* lda, const double* b, const int32_t* ldb,
	const double* beta, double* c, const int32_t* ldc) {
	dgemm_ref(*ta, *tb, *m, *n, *k, *alpha, a, *lda, b, *ldb, *beta, c, *ldc);
}

static void dgemm64(const char* ta, const char* tb, const int64_t* m, const int64_t* n, const int64_t* k,
	const double* alpha, const double* a, const int64_t* lda, const double* b, const int64_t* ldb,
	const double* beta, double* c, const int64_t* ldc) {
	dgemm_ref(*ta, *tb, *m, *n, *k, *alpha, a, *lda, b, *ldb, *beta, c, *ldc);
}

static void zgemm32(const char* ta, const char* tb, const int32_t* m, const int32_t* n, const int32_t* k,
	const double* alpha, const double* a, const int32_t* lda, const double* b, const int32_t* ldb,
	const double* beta, double* c, const int32_t* ldc) {
	zgemm_ref(*ta, *tb, *m, *n, *k, alpha, a, *lda, b, *ldb, beta, c, *ldc);
}

static void zgemm64(const char* ta, const char* tb, const int64_t* m, const int64_t* n, const int64_t* k,
	const double* alpha, const double* a, const int64_t* lda, const double* b, const int64_t* ldb,
	const double* beta, double* c, const int64_t* ldc) {
	zgemm_ref(*ta, *tb, *m, *n, *k, alpha, a, *lda, b, *ldb, beta, c, *ldc);
}

static void* dgemm32_addr(void) { return (void*)&dgemm32; }
static void* dgemm64_addr(void) { return (void*)&dgemm64; }
static void* zgemm32_addr(void) { return (void*)&zgemm32; }
static void* zgemm64_addr(void) { return (void*)&zgemm64; }
*/
import "C"

import "unsafe"

// Dgemm returns the address of dgemm_ taking 32-bit (wide false) or 64-bit
// (wide true) integer arguments.
func Dgemm(wide bool) unsafe.Pointer {
	if wide {
		return C.dgemm64_addr()
	}
	return C.dgemm32_addr()
}

// Zgemm returns the address of zgemm_ for the given index width.
func Zgemm(wide bool) unsafe.Pointer {
	if wide {
		return C.zgemm64_addr()
	}
	return C.zgemm32_addr()
}
