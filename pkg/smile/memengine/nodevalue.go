package memengine

import (
	"sync"

	"github.com/sisl/smile-go/pkg/smile"
)

var (
	_ smile.NodeValue = (*NodeValue)(nil)
	_ smile.Matrix    = (*Matrix)(nil)
)

// NodeValue owns a Matrix the way DSL_nodeValue owns its DSL_Dmatrix.
type NodeValue struct {
	mu     sync.RWMutex
	matrix *Matrix
}

// NewNodeValue returns a node value backed by m. m may be nil.
func NewNodeValue(m *Matrix) *NodeValue {
	return &NodeValue{matrix: m}
}

// Matrix returns the backing matrix itself, not a copy. A node value without
// a matrix returns a nil smile.Matrix.
func (v *NodeValue) Matrix() smile.Matrix {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.matrix == nil {
		return nil
	}
	return v.matrix
}

// Table returns the concrete backing matrix.
func (v *NodeValue) Table() *Matrix {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.matrix
}

// Size is the element count of the backing matrix, 0 without one.
func (v *NodeValue) Size() int {
	v.mu.RLock()
	m := v.matrix
	v.mu.RUnlock()
	if m == nil {
		return 0
	}
	return m.Size()
}

// SetMatrix replaces the backing matrix.
func (v *NodeValue) SetMatrix(m *Matrix) {
	v.mu.Lock()
	v.matrix = m
	v.mu.Unlock()
}
