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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-blasbridge/bridge/inject"
	"github.com/ajroetker/go-blasbridge/bridge/kernel"
	"github.com/ajroetker/go-blasbridge/internal/config"
	"github.com/ajroetker/go-blasbridge/internal/cpuinfo"
)

func newInfoCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the linked library, host features and injection status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Static library: %s\n", kernel.Name())
			if err := cpuinfo.Collect().Write(w); err != nil {
				return err
			}
			if cfg.Inject.Enabled {
				if err := registerInjected(cfg.Inject); err != nil {
					return err
				}
			}
			avail, ok := inject.Default().AvailableFunctions()
			if !ok {
				fmt.Fprintln(w, "Injected backend: none")
				return nil
			}
			fmt.Fprintf(w, "Injected backend: %s [%s]\n", avail.Width, strings.Join(avail.Names(), " "))
			return nil
		},
	}
}

// registerInjected hands the linked library to the default registry
// through the Fortran calling convention.
func registerInjected(c config.InjectConfig) error {
	width, err := c.IndexWidth()
	if err != nil {
		return err
	}
	if inject.Default().IsRegistered() {
		return nil
	}
	return inject.Default().Register(inject.FromLibrary(kernel.Current(), width), width)
}
