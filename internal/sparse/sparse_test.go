package sparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrix_Entries(t *testing.T) {

	type test struct {
		matrix  Matrix
		entries []Entry
		err     error
	}

	tests := map[string]test{
		"empty": {
			matrix:  Matrix{NRow: 3, NCol: 3},
			entries: []Entry{},
		},
		"values": {
			matrix: Matrix{
				NRow:   2,
				NCol:   3,
				Rows:   []uint32{1, 0},
				Cols:   []uint32{2, 1},
				Values: []float64{4.5, -1},
			},
			entries: []Entry{
				{Coords: []int{1, 2}, Value: 4.5},
				{Coords: []int{0, 1}, Value: -1},
			},
		},
		"binary": {
			matrix: Matrix{
				NRow: 2,
				NCol: 2,
				Rows: []uint32{0, 1},
				Cols: []uint32{0, 1},
			},
			entries: []Entry{
				{Coords: []int{0, 0}, Value: 1},
				{Coords: []int{1, 1}, Value: 1},
			},
		},
		"rows-vs-cols": {
			matrix: Matrix{NRow: 2, NCol: 2, Rows: []uint32{0, 1}, Cols: []uint32{0}},
			err:    ErrShape,
		},
		"missing-values": {
			matrix: Matrix{NRow: 2, NCol: 2, Rows: []uint32{0}, Cols: []uint32{0}, Values: []float64{}},
			err:    ErrShape,
		},
		"out-of-range": {
			matrix: Matrix{NRow: 2, NCol: 2, Rows: []uint32{2}, Cols: []uint32{0}, Values: []float64{1}},
			err:    ErrOutOfRange,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			entries, err := tt.matrix.Entries()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.entries, entries)
			assert.Equal(t, len(tt.entries), tt.matrix.NNZ())
		})
	}
}

func TestTensor_Entries(t *testing.T) {

	// 2x3x2 tensor with four entries, coordinates listed mode by mode
	tensor := Tensor{
		Dims: []uint64{2, 3, 2},
		Columns: []uint32{
			0, 1, 0, 1,
			0, 0, 2, 2,
			0, 1, 0, 1,
		},
		Values: []float64{1, 2, 3, 4},
	}

	assert.Equal(t, 3, tensor.NModes())
	assert.Equal(t, 4, tensor.NNZ())

	entries, err := tensor.Entries()
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Coords: []int{0, 0, 0}, Value: 1},
		{Coords: []int{1, 0, 1}, Value: 2},
		{Coords: []int{0, 2, 0}, Value: 3},
		{Coords: []int{1, 2, 1}, Value: 4},
	}, entries)
}

func TestTensor_Errors(t *testing.T) {

	type test struct {
		tensor Tensor
		err    error
	}

	tests := map[string]test{
		"no-dims": {
			tensor: Tensor{Columns: []uint32{0}},
			err:    ErrShape,
		},
		"ragged-columns": {
			tensor: Tensor{Dims: []uint64{2, 2}, Columns: []uint32{0, 1, 0}},
			err:    ErrShape,
		},
		"values": {
			tensor: Tensor{Dims: []uint64{2, 2}, Columns: []uint32{0, 1}, Values: []float64{1, 2}},
			err:    ErrShape,
		},
		"out-of-range": {
			tensor: Tensor{Dims: []uint64{2, 2}, Columns: []uint32{0, 2}, Values: []float64{1}},
			err:    ErrOutOfRange,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.tensor.Entries()
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTensor_Empty(t *testing.T) {
	entries, err := Tensor{}.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = Tensor{Dims: []uint64{3, 3}}.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFromDense(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		0, 1.5, 0,
		math.NaN(), 0, 3,
	})

	entries := FromDense(m)
	require.Equal(t, 3, len(entries))
	assert.Equal(t, Entry{Coords: []int{0, 1}, Value: 1.5}, entries[0])
	assert.Equal(t, []int{1, 0}, entries[1].Coords)
	assert.True(t, math.IsNaN(entries[1].Value))
	assert.Equal(t, Entry{Coords: []int{1, 2}, Value: 3}, entries[2])

	assert.Empty(t, FromDense(mat.NewDense(2, 2, nil)))
}
