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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixBounds(t *testing.T) {
	data := make([]float64, 12)

	tests := []struct {
		name               string
		rows, cols, rs, cs int
		ok                 bool
	}{
		{"dense row-major", 3, 4, 4, 1, true},
		{"dense col-major", 3, 4, 1, 3, true},
		{"padded rows", 2, 4, 6, 1, true},
		{"one past end", 3, 4, 5, 1, false},
		{"negative extent", -1, 4, 4, 1, false},
		{"negative stride", 3, 4, -4, 1, false},
		{"empty ignores strides", 0, 100, 100, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMatrix(data, tt.rows, tt.cols, tt.rs, tt.cs)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrLayout), "got %v", err)
			var le *LayoutError
			require.True(t, errors.As(err, &le))
			require.Equal(t, "view", le.Op)
		})
	}
}

func TestMatrixTransposeShares(t *testing.T) {
	a := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	at := a.T()

	require.Equal(t, [2]int{3, 2}, at.Shape())
	require.Equal(t, [2]int{1, 3}, at.Strides())
	require.Equal(t, 6.0, at.At(2, 1))

	at.Set(0, 1, 40)
	require.Equal(t, 40.0, a.At(1, 0))
}

func TestMatrixSub(t *testing.T) {
	data := make([]float32, 20)
	for i := range data {
		data[i] = float32(i)
	}
	a := Dense(data, 4, 5, RowMajor)
	s := a.Sub(1, 2, 2, 3)

	require.Equal(t, [2]int{5, 1}, s.Strides())
	if diff := cmp.Diff([]float32{7, 8, 9, 12, 13, 14}, s.Elements()); diff != "" {
		t.Errorf("sub-view elements mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, float32(7), s.Data()[0])

	require.Panics(t, func() { a.Sub(3, 0, 2, 1) })
}

func TestRowAndCol(t *testing.T) {
	a := Dense([]complex64{1, 2, 3, 4, 5, 6}, 2, 3, ColMajor)

	row := a.Row(1)
	require.Equal(t, 3, row.Len())
	require.Equal(t, 2, row.Stride())
	if diff := cmp.Diff([]complex64{2, 4, 6}, row.Elements()); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}

	col := a.Col(2)
	require.Equal(t, 1, col.Stride())
	if diff := cmp.Diff([]complex64{5, 6}, col.Elements()); diff != "" {
		t.Errorf("col mismatch (-want +got):\n%s", diff)
	}
}

func TestNewVector(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}

	v, err := NewVector(data, 3, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 5}, v.Elements())

	_, err = NewVector(data, 3, 3)
	require.True(t, errors.Is(err, ErrLayout))

	_, err = NewVector(data, 2, -1)
	require.True(t, errors.Is(err, ErrLayout))

	require.Panics(t, func() { VectorOf(data).At(5) })
}
