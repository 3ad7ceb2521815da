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

// Command bindgen writes the per scalar kind kernel bindings.
//
// Usage:
//
//	go run ./cmd/bindgen -o bridge/kernel/zz_binding.go
package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/pflag"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

//go:embed binding.tmpl
var bindingTemplate string

// Kind describes one scalar kind and the library routines it binds to.
type Kind struct {
	Name    string // binding and gonum interface name, e.g. "Complex64"
	Elem    string // Go element type
	Real    string // Go type of the real component
	Kind    string // bridge.ScalarKind constant
	Prefix  string // lowercase Fortran prefix
	Complex bool

	Gemm, Symm, Hemm, Trmm            string
	Gemv, Ger, Gerc, Syr, Her         string
	Axpy, Scal, Copy, Swap, Dot, Dotc string
	Nrm2, Asum, Iamax                 string
}

// newKind fills the routine names for elem. Real kinds have no separate
// Hermitian or conjugated routines and reuse the symmetric ones. Complex
// kinds have no symmetric rank-1 update.
func newKind(elem, realType, kind, prefix, normPrefix string) Kind {
	title := cases.Title(language.Und)
	p := strings.ToUpper(prefix)
	k := Kind{
		Name:    title.String(elem),
		Elem:    elem,
		Real:    realType,
		Kind:    kind,
		Prefix:  prefix,
		Complex: strings.HasPrefix(elem, "complex"),
	}
	k.Gemm, k.Symm, k.Trmm, k.Gemv = p+"gemm", p+"symm", p+"trmm", p+"gemv"
	k.Axpy, k.Scal, k.Copy, k.Swap = p+"axpy", p+"scal", p+"copy", p+"swap"
	k.Iamax = "I" + prefix + "amax"
	if k.Complex {
		k.Hemm, k.Her = p+"hemm", p+"her"
		k.Ger, k.Gerc = p+"geru", p+"gerc"
		k.Dot, k.Dotc = p+"dotu", p+"dotc"
		k.Nrm2, k.Asum = normPrefix+prefix+"nrm2", normPrefix+prefix+"asum"
	} else {
		k.Hemm, k.Her, k.Syr = p+"symm", p+"syr", p+"syr"
		k.Ger, k.Gerc = p+"ger", p+"ger"
		k.Dot, k.Dotc = p+"dot", p+"dot"
		k.Nrm2, k.Asum = p+"nrm2", p+"asum"
	}
	return k
}

// Kinds is the closed set of scalar kinds, in bridge.ScalarKind order.
var Kinds = []Kind{
	newKind("float32", "float32", "RealSingle", "s", ""),
	newKind("float64", "float64", "RealDouble", "d", ""),
	newKind("complex64", "float32", "ComplexSingle", "c", "S"),
	newKind("complex128", "float64", "ComplexDouble", "z", "D"),
}

// Generator renders the binding template.
type Generator struct {
	Package string
	Output  string
}

// Run renders, formats and writes the bindings.
func (g *Generator) Run() error {
	tmpl, err := template.New("binding").Parse(bindingTemplate)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Package string
		Kinds   []Kind
	}{g.Package, Kinds})
	if err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	src, err := imports.Process(g.Output, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format output: %w", err)
	}
	if g.Output == "" || g.Output == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(g.Output, src, 0o644)
}

func main() {
	g := &Generator{}
	pflag.StringVarP(&g.Output, "output", "o", "zz_binding.go", "output file, - for stdout")
	pflag.StringVarP(&g.Package, "package", "p", "kernel", "package name of the output")
	pflag.Parse()

	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "bindgen: %v\n", err)
		os.Exit(1)
	}
}
