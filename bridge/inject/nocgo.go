// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build !cgo

package inject

import (
	"unsafe"

	"github.com/ajroetker/go-blasbridge/bridge"
)

const cgoEnabled = false

func fromPointer[T bridge.Scalar, I int32 | int64](unsafe.Pointer) GemmFunc[T, I] {
	return nil
}
