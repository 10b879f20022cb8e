package smile

import "fmt"

// NodeValueGetMatrix resolves a node value handle, asks the node value for
// its matrix and returns a handle to that matrix. The matrix handle aliases
// the engine's object, it is not a copy, and asking twice for the same node
// value yields the same handle. The handle is released together with the
// node value handle it came from.
func (r *Registry) NodeValueGetMatrix(h Handle) (Handle, error) {
	v, err := r.NodeValue(h)
	if err != nil {
		return 0, err
	}
	m := v.Matrix()
	if isNil(m) {
		return 0, fmt.Errorf("%w: %s", ErrNilMatrix, h)
	}
	return r.insert(KindMatrix, m, h)
}

// NodeValueGetSize resolves a node value handle and returns its size.
func (r *Registry) NodeValueGetSize(h Handle) (int, error) {
	v, err := r.NodeValue(h)
	if err != nil {
		return 0, err
	}
	return v.Size(), nil
}

// MatrixSize resolves a matrix handle and returns its element count.
func (r *Registry) MatrixSize(h Handle) (int, error) {
	m, err := r.Matrix(h)
	if err != nil {
		return 0, err
	}
	return m.Size(), nil
}

// MatrixAt resolves a matrix handle and reads the element at a flat index.
func (r *Registry) MatrixAt(h Handle, index int) (float64, error) {
	m, err := r.Matrix(h)
	if err != nil {
		return 0, err
	}
	if n := m.Size(); index < 0 || index >= n {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, n)
	}
	return m.At(index), nil
}

// NodeValueGetMatrix runs Registry.NodeValueGetMatrix on the default registry.
func NodeValueGetMatrix(h Handle) (Handle, error) {
	return defaultRegistry.NodeValueGetMatrix(h)
}

// NodeValueGetSize runs Registry.NodeValueGetSize on the default registry.
func NodeValueGetSize(h Handle) (int, error) {
	return defaultRegistry.NodeValueGetSize(h)
}
