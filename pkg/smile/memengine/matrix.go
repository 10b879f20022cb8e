package memengine

import (
	"errors"
	"fmt"
	"sync"
)

// Matrix is a dense table stored row-major with the last dimension varying
// fastest, the layout DSL_Dmatrix uses.
type Matrix struct {
	mu     sync.RWMutex
	dims   []int
	values []float64
}

// NewMatrix returns a zero-filled matrix with the given dimension sizes.
func NewMatrix(dims ...int) (*Matrix, error) {
	if len(dims) == 0 {
		return nil, errors.New("memengine: matrix needs at least one dimension")
	}
	size := 1
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("memengine: dimension %d has size %d", i, d)
		}
		size *= d
	}
	return &Matrix{
		dims:   append([]int(nil), dims...),
		values: make([]float64, size),
	}, nil
}

func (m *Matrix) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

func (m *Matrix) NumDimensions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.dims)
}

// DimensionSize returns the size of dimension dim, or 0 when dim is out of
// range.
func (m *Matrix) DimensionSize(dim int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if dim < 0 || dim >= len(m.dims) {
		return 0
	}
	return m.dims[dim]
}

// Dimensions returns a copy of the dimension sizes.
func (m *Matrix) Dimensions() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]int(nil), m.dims...)
}

// At returns the element at a flat index. It panics when index is out of
// range, like a slice access.
func (m *Matrix) At(index int) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[index]
}

// Set stores v at a flat index. It panics when index is out of range.
func (m *Matrix) Set(index int, v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[index] = v
}

// Index converts per-dimension coordinates to a flat index.
func (m *Matrix) Index(coords ...int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(coords) != len(m.dims) {
		return 0, fmt.Errorf("memengine: got %d coordinates for %d dimensions", len(coords), len(m.dims))
	}
	index := 0
	for i, c := range coords {
		if c < 0 || c >= m.dims[i] {
			return 0, fmt.Errorf("memengine: coordinate %d out of range [0,%d) in dimension %d", c, m.dims[i], i)
		}
		index = index*m.dims[i] + c
	}
	return index, nil
}

// Values returns a copy of the flat element slice.
func (m *Matrix) Values() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]float64(nil), m.values...)
}

// SetValues overwrites every element. len(values) must equal Size().
func (m *Matrix) SetValues(values []float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(values) != len(m.values) {
		return fmt.Errorf("memengine: got %d values for a matrix of size %d", len(values), len(m.values))
	}
	copy(m.values, values)
	return nil
}
