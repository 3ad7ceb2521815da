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

// Mode selects how a dispatch treats its output.
type Mode uint8

const (
	// WriteInto overwrites a caller supplied destination (beta = 0).
	WriteInto Mode = iota
	// ProduceFresh allocates the destination and returns it.
	ProduceFresh
	// AccumulateScaled scales the prior destination by beta and adds the
	// product to it.
	AccumulateScaled
)

func (m Mode) String() string {
	switch m {
	case WriteInto:
		return "WriteInto"
	case ProduceFresh:
		return "ProduceFresh"
	case AccumulateScaled:
		return "AccumulateScaled"
	default:
		return "Mode(?)"
	}
}

// Beta returns the beta a dispatch in mode m passes to the library. For
// AccumulateScaled the caller's scale is returned unchanged.
func Beta[T Scalar](m Mode, scale T) T {
	if m == AccumulateScaled {
		return scale
	}
	return Zero[T]()
}
