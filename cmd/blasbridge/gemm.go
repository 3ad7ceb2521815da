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

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-blasbridge/bridge"
	"github.com/ajroetker/go-blasbridge/bridge/contrib/matmul"
	"github.com/ajroetker/go-blasbridge/bridge/inject"
	"github.com/ajroetker/go-blasbridge/internal/config"
)

func newGemmCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gemm",
		Short: "Multiply two sample matrices and print the product",
		Long: `Multiply A (A[i][j] = i*size + j + 1) by its transpose. The transpose is
a view over A's storage, so the call exercises the layout resolver with
operands of different storage orders.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := cfg.Demo.ScalarKind()
			if err != nil {
				return err
			}
			order, err := cfg.Demo.StorageOrder()
			if err != nil {
				return err
			}
			if cfg.Inject.Enabled {
				if err := registerInjected(cfg.Inject); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			n, injected := cfg.Demo.Size, cfg.Inject.Enabled
			switch kind {
			case bridge.RealSingle:
				return runGemm[float32](w, n, order, injected)
			case bridge.RealDouble:
				return runGemm[float64](w, n, order, injected)
			case bridge.ComplexSingle:
				return runGemm[complex64](w, n, order, injected)
			default:
				return runGemm[complex128](w, n, order, injected)
			}
		},
	}
	cmd.Flags().String("order", "row", "storage order of A (row or col)")
	cmd.Flags().String("kind", "float64", "element type (float32, float64, complex64, complex128)")
	cmd.Flags().Int("size", 2, "A is size x size")
	return cmd
}

func runGemm[T bridge.Scalar](w io.Writer, n int, order bridge.Order, injected bool) error {
	a := bridge.Zeros[T](n, n, order)
	for i := range n {
		for j := range n {
			a.Set(i, j, scalarOf[T](float64(i*n+j+1)))
		}
	}
	log.Debug().
		Str("kind", bridge.KindOf[T]().String()).
		Stringer("order", order).
		Bool("injected", injected).
		Int("size", n).
		Msg("gemm")

	var (
		c   bridge.Matrix[T]
		err error
	)
	if injected {
		c, err = inject.Fresh(bridge.One[T](), a, a.T())
	} else {
		c, err = matmul.Fresh(bridge.One[T](), a, a.T())
	}
	if err != nil {
		return err
	}
	for i := range c.Rows() {
		fmt.Fprintln(w, c.Row(i).Elements())
	}
	return nil
}

func scalarOf[T bridge.Scalar](v float64) T {
	var out T
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	case *complex64:
		*p = complex(float32(v), 0)
	case *complex128:
		*p = complex(v, 0)
	}
	return out
}
