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

package bridge

import "fmt"

// Structure is the structure of the special operand of a product or update.
type Structure uint8

const (
	Symmetric Structure = iota
	Hermitian
	Triangular
)

func (s Structure) String() string {
	switch s {
	case Symmetric:
		return "Symmetric"
	case Hermitian:
		return "Hermitian"
	case Triangular:
		return "Triangular"
	default:
		return fmt.Sprintf("Structure(%d)", uint8(s))
	}
}
