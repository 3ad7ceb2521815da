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

// Command blasbridge inspects the linked BLAS backend and runs small
// matrix products through the static or the injected dispatch path.
//
// Usage:
//
//	blasbridge info [--inject]
//	blasbridge gemm [--size N] [--kind float64] [--order row|col] [--inject] [--inject-width narrow|wide]
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-blasbridge/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		cfg     config.Config
	)
	root := &cobra.Command{
		Use:          "blasbridge",
		Short:        "Inspect and exercise the BLAS dispatch layer",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.Load(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			setupLogging(c.Log)
			cfg = c
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ./blasbridge.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().Bool("inject", false, "register the linked library as an injected Fortran backend")
	root.PersistentFlags().String("inject-width", "narrow", "index width of the injected backend (narrow or wide)")

	root.AddCommand(newInfoCmd(&cfg), newGemmCmd(&cfg))
	return root
}

func setupLogging(c config.LogConfig) {
	level, err := c.ZerologLevel()
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}
