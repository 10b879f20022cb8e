//go:build cgo && smile

package backend

/*
#include "smile_capi.h"
*/
import "C"

import "unsafe"

// Check reports whether the native engine is linked in.
func Check() error { return nil }

// Version returns the version string from the native library, or empty if
// not available. SMILE does not export one through the C shim.
func Version() string { return "" }

// NodeValueGetMatrix returns the DSL_Dmatrix* owned by the node value. The
// result aliases engine memory and must not be freed.
func NodeValueGetMatrix(nodeval unsafe.Pointer) unsafe.Pointer {
	return C.smile_go_nodevalue_get_matrix(nodeval)
}

// NodeValueGetSize returns DSL_nodeValue::GetSize.
func NodeValueGetSize(nodeval unsafe.Pointer) int {
	return int(C.smile_go_nodevalue_get_size(nodeval))
}

func DmatrixGetSize(dmat unsafe.Pointer) int {
	return int(C.smile_go_dmatrix_get_size(dmat))
}

func DmatrixGetNumberOfDimensions(dmat unsafe.Pointer) int {
	return int(C.smile_go_dmatrix_get_number_of_dimensions(dmat))
}

func DmatrixGetSizeOfDimension(dmat unsafe.Pointer, dim int) int {
	return int(C.smile_go_dmatrix_get_size_of_dimension(dmat, C.int(dim)))
}

// DmatrixGetItem reads the flat element at index. Bounds are the caller's
// responsibility.
func DmatrixGetItem(dmat unsafe.Pointer, index int) float64 {
	return float64(C.smile_go_dmatrix_get_item(dmat, C.int(index)))
}
