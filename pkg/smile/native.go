package smile

import (
	"fmt"
	"unsafe"

	"github.com/sisl/smile-go/pkg/smile/internal/backend"
)

// nativeNodeValue wraps a DSL_nodeValue* owned by the engine. No finalizer
// is attached: the engine decides when the object dies.
type nativeNodeValue struct {
	ptr unsafe.Pointer
}

// nativeMatrix wraps a DSL_Dmatrix* owned by the node value it came from.
type nativeMatrix struct {
	ptr unsafe.Pointer
}

// WrapNativeNodeValue adapts a DSL_nodeValue* obtained from the engine.
// Apart from nil, the pointer is trusted: a dangling or mistyped pointer is
// undefined behaviour on first use. Builds without the native engine return
// ErrNotBuilt or ErrCGONotEnabled.
func WrapNativeNodeValue(ptr unsafe.Pointer) (NodeValue, error) {
	if err := backend.Check(); err != nil {
		return nil, RemapError(err)
	}
	if ptr == nil {
		return nil, ErrNilNodeValue
	}
	return nativeNodeValue{ptr: ptr}, nil
}

func (v nativeNodeValue) Matrix() Matrix {
	p := backend.NodeValueGetMatrix(v.ptr)
	if p == nil {
		return nil
	}
	return nativeMatrix{ptr: p}
}

func (v nativeNodeValue) Size() int {
	return backend.NodeValueGetSize(v.ptr)
}

func (m nativeMatrix) Size() int {
	return backend.DmatrixGetSize(m.ptr)
}

func (m nativeMatrix) NumDimensions() int {
	return backend.DmatrixGetNumberOfDimensions(m.ptr)
}

func (m nativeMatrix) DimensionSize(dim int) int {
	if dim < 0 || dim >= m.NumDimensions() {
		return 0
	}
	return backend.DmatrixGetSizeOfDimension(m.ptr, dim)
}

// At panics on an out-of-range index instead of reading past the native
// buffer.
func (m nativeMatrix) At(index int) float64 {
	if n := m.Size(); index < 0 || index >= n {
		panic(fmt.Sprintf("smile: matrix index %d out of range [0,%d)", index, n))
	}
	return backend.DmatrixGetItem(m.ptr, index)
}
