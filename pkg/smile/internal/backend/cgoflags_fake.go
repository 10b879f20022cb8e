//go:build cgo && smile && smilefake

package backend

// The smilefake tag swaps the SMILE distribution for the header-only engine
// in testdata/fakesmile, so the shim and the C ABI can be built and tested
// without the proprietary library.

/*
#cgo CXXFLAGS: -std=c++11 -I${SRCDIR}/testdata/fakesmile
#cgo CFLAGS: -I${SRCDIR}/testdata/fakesmile
#cgo LDFLAGS: -lstdc++
#include "fake_engine.h"
*/
import "C"

import "unsafe"

// NewFakeNodeValue allocates a node value in the fake engine backed by a
// matrix with the given dimensions and values. Free it with FreeFakeNodeValue.
func NewFakeNodeValue(dims []int, values []float64) unsafe.Pointer {
	cdims := make([]C.int, len(dims))
	for i, d := range dims {
		cdims[i] = C.int(d)
	}
	cvals := make([]C.double, len(values))
	for i, v := range values {
		cvals[i] = C.double(v)
	}
	var dp *C.int
	if len(cdims) > 0 {
		dp = &cdims[0]
	}
	var vp *C.double
	if len(cvals) > 0 {
		vp = &cvals[0]
	}
	return C.smile_go_fake_nodevalue_new(C.int(len(cdims)), dp, C.int(len(cvals)), vp)
}

// NewFakeNodeValueWithoutMatrix allocates a node value whose matrix is nil.
func NewFakeNodeValueWithoutMatrix() unsafe.Pointer {
	return C.smile_go_fake_nodevalue_new(-1, nil, 0, nil)
}

// FakeNodeValueMatrix reads the node value's matrix field directly,
// bypassing DSL_nodeValue::GetMatrix.
func FakeNodeValueMatrix(nodeval unsafe.Pointer) unsafe.Pointer {
	return C.smile_go_fake_nodevalue_matrix(nodeval)
}

// FreeFakeNodeValue releases a node value allocated by NewFakeNodeValue.
func FreeFakeNodeValue(nodeval unsafe.Pointer) {
	C.smile_go_fake_nodevalue_free(nodeval)
}
