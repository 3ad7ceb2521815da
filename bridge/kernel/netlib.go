// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && netlib

package kernel

// This file links the system CBLAS (Accelerate on macOS, OpenBLAS on Linux)
// through gonum's netlib wrapper.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/netlib/blas/netlib"
)

func defaultLibrary() Library {
	log.Debug().Msg("system BLAS linked (netlib)")
	return netlib.Implementation{}
}
