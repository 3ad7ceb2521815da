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

// Package fortranref provides naive column-major dgemm_ and zgemm_ written
// in C, with 32-bit and 64-bit index arguments. Their addresses stand in for
// the symbols a host process hands to inject.Register. The routines exist
// only in cgo builds.
package fortranref
