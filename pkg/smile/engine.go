package smile

import "reflect"

// NodeValue is the engine-side value attached to a network node
// (DSL_nodeValue). Implementations are owned by the engine; the binding
// never constructs, mutates or frees them.
type NodeValue interface {
	// Matrix returns the table backing the value. The result aliases engine
	// memory and stays valid only while the engine keeps it alive.
	Matrix() Matrix
	// Size returns the number of entries in the value.
	Size() int
}

// Matrix is an engine-owned numeric table (DSL_Dmatrix). Elements are
// addressed by a flat row-major index, last dimension fastest.
type Matrix interface {
	Size() int
	NumDimensions() int
	DimensionSize(dim int) int
	At(index int) float64
}

// isNil reports whether v is nil or an interface holding a nil pointer-like
// value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// internable reports whether v may be used as a map key for interning.
func internable(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Comparable()
}
