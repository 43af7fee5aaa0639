// Package sparse holds the ground truth representations that predictions are built from.
package sparse

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is returned when the coordinate and value slices do not line up.
	ErrShape = errors.New("inconsistent shape")
	// ErrOutOfRange is returned when a coordinate lies outside the declared dimensions.
	ErrOutOfRange = errors.New("coordinate out of range")
)

// Entry is a known value at the given coordinates.
type Entry struct {
	Coords []int
	Value  float64
}

// Matrix is a sparse matrix in triplet form.
// A nil Values slice describes a binary matrix, where every listed entry is 1.
type Matrix struct {
	NRow   uint64
	NCol   uint64
	Rows   []uint32
	Cols   []uint32
	Values []float64
}

// NNZ returns the number of explicitly stored entries.
func (m Matrix) NNZ() int {
	return len(m.Rows)
}

// IsBinary reports if the matrix carries no values.
func (m Matrix) IsBinary() bool {
	return m.Values == nil
}

// Entries returns the stored entries in the order they are listed.
func (m Matrix) Entries() ([]Entry, error) {
	if len(m.Rows) != len(m.Cols) {
		return nil, fmt.Errorf("%d rows vs %d cols: %w", len(m.Rows), len(m.Cols), ErrShape)
	}
	if !m.IsBinary() && len(m.Values) != len(m.Rows) {
		return nil, fmt.Errorf("%d values for %d entries: %w", len(m.Values), len(m.Rows), ErrShape)
	}

	entries := make([]Entry, len(m.Rows))
	for i := range m.Rows {
		r, c := m.Rows[i], m.Cols[i]
		if uint64(r) >= m.NRow || uint64(c) >= m.NCol {
			return nil, fmt.Errorf("(%d, %d) in %dx%d: %w", r, c, m.NRow, m.NCol, ErrOutOfRange)
		}
		value := 1.0
		if !m.IsBinary() {
			value = m.Values[i]
		}
		entries[i] = Entry{
			Coords: []int{int(r), int(c)},
			Value:  value,
		}
	}
	return entries, nil
}

// Tensor is a sparse tensor in coordinate form.
// Columns holds the coordinates mode by mode : the coordinate of entry i along mode m is
// Columns[m*nnz+i].
// A nil Values slice describes a binary tensor, where every listed entry is 1.
type Tensor struct {
	Dims    []uint64
	Columns []uint32
	Values  []float64
}

// NModes returns the number of dimensions.
func (t Tensor) NModes() int {
	return len(t.Dims)
}

// NNZ returns the number of explicitly stored entries.
func (t Tensor) NNZ() int {
	if len(t.Dims) == 0 {
		return 0
	}
	return len(t.Columns) / len(t.Dims)
}

// IsBinary reports if the tensor carries no values.
func (t Tensor) IsBinary() bool {
	return t.Values == nil
}

// Entries returns the stored entries in the order they are listed.
func (t Tensor) Entries() ([]Entry, error) {
	modes := t.NModes()
	if modes == 0 {
		if len(t.Columns) != 0 || len(t.Values) != 0 {
			return nil, fmt.Errorf("entries without dimensions: %w", ErrShape)
		}
		return []Entry{}, nil
	}
	if len(t.Columns)%modes != 0 {
		return nil, fmt.Errorf("%d coordinates for %d modes: %w", len(t.Columns), modes, ErrShape)
	}
	nnz := t.NNZ()
	if !t.IsBinary() && len(t.Values) != nnz {
		return nil, fmt.Errorf("%d values for %d entries: %w", len(t.Values), nnz, ErrShape)
	}

	entries := make([]Entry, nnz)
	for i := 0; i < nnz; i++ {
		coords := make([]int, modes)
		for m := 0; m < modes; m++ {
			c := t.Columns[m*nnz+i]
			if uint64(c) >= t.Dims[m] {
				return nil, fmt.Errorf("coordinate %d of mode %d with size %d: %w", c, m, t.Dims[m], ErrOutOfRange)
			}
			coords[m] = int(c)
		}
		value := 1.0
		if !t.IsBinary() {
			value = t.Values[i]
		}
		entries[i] = Entry{
			Coords: coords,
			Value:  value,
		}
	}
	return entries, nil
}

// FromDense returns the non-zero entries of the given matrix, row by row.
// NaN entries are not zero and are therefore kept.
func FromDense(m mat.Matrix) []Entry {
	rows, cols := m.Dims()
	entries := make([]Entry, 0)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			if v == 0 {
				continue
			}
			entries = append(entries, Entry{
				Coords: []int{i, j},
				Value:  v,
			})
		}
	}
	return entries
}
