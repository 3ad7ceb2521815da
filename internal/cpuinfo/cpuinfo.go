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

// Package cpuinfo reports the host properties that matter when choosing a
// BLAS backend: architecture, vector extensions and memory.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"github.com/pbnjay/memory"
	"golang.org/x/sys/cpu"
)

// Feature is one detected CPU capability.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Report describes the host.
type Report struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []Feature
	// TotalMemory and FreeMemory are in bytes; zero if unknown.
	TotalMemory uint64
	FreeMemory  uint64
}

// Collect inspects the running host.
func Collect() Report {
	return Report{
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		Features:    features(runtime.GOARCH),
		TotalMemory: memory.TotalMemory(),
		FreeMemory:  memory.FreeMemory(),
	}
}

// Has reports whether the named feature was detected.
func (r Report) Has(name string) bool {
	for _, f := range r.Features {
		if f.Name == name {
			return f.Present
		}
	}
	return false
}

// Write prints the report in the layout of the info command.
func (r Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "GOOS: %s\nGOARCH: %s\nNumCPU: %d\n", r.GOOS, r.GOARCH, r.NumCPU); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Memory: %s total, %s free\n", humanBytes(r.TotalMemory), humanBytes(r.FreeMemory)); err != nil {
		return err
	}
	for _, f := range r.Features {
		line := fmt.Sprintf("  %-12s %v", f.Name+":", f.Present)
		if f.Note != "" {
			line += " (" + f.Note + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func features(arch string) []Feature {
	switch arch {
	case "arm64":
		return []Feature{
			{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"FP", cpu.ARM64.HasFP, ""},
			{"FPHP", cpu.ARM64.HasFPHP, "FP16 scalar"},
			{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON"},
			{"ASIMDFHM", cpu.ARM64.HasASIMDFHM, "FP16 FMA"},
			{"SVE", cpu.ARM64.HasSVE, ""},
			{"SVE2", cpu.ARM64.HasSVE2, ""},
		}
	case "amd64":
		return []Feature{
			{"SSE2", cpu.X86.HasSSE2, ""},
			{"SSE41", cpu.X86.HasSSE41, ""},
			{"SSE42", cpu.X86.HasSSE42, ""},
			{"AVX", cpu.X86.HasAVX, ""},
			{"AVX2", cpu.X86.HasAVX2, ""},
			{"FMA", cpu.X86.HasFMA, ""},
			{"AVX512F", cpu.X86.HasAVX512F, ""},
			{"AVX512BW", cpu.X86.HasAVX512BW, ""},
			{"AVX512VL", cpu.X86.HasAVX512VL, ""},
		}
	default:
		return nil
	}
}

func humanBytes(n uint64) string {
	const unit = 1 << 10
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
