//go:build cgo

package main

/*
#include <stdint.h>
*/
import "C"

import "unsafe"

// smile_open installs a registry configured from the YAML file at
// configPath; NULL or "" uses defaults. Handles issued before the call are
// not carried over. Returns 0 on success and -1 on failure.
//
//export smile_open
func smile_open(configPath *C.char) C.int {
	path := ""
	if configPath != nil {
		path = C.GoString(configPath)
	}
	return C.int(open(path))
}

//export smile_close
func smile_close() C.int {
	return C.int(closeLib())
}

//export nodevalue_GetMatrix
func nodevalue_GetMatrix(h C.uint64_t) C.uint64_t {
	return C.uint64_t(getMatrix(uint64(h)))
}

//export nodevalue_GetSize
func nodevalue_GetSize(h C.uint64_t) C.int {
	return C.int(getSize(uint64(h)))
}

//export smile_nodevalue_register
func smile_nodevalue_register(nodeval unsafe.Pointer) C.uint64_t {
	return C.uint64_t(registerNodeValue(nodeval))
}

// smile_handle_release drops one reference to h. Each register or
// nodevalue_GetMatrix call that returned h holds one.
//
//export smile_handle_release
func smile_handle_release(h C.uint64_t) C.int {
	return C.int(release(uint64(h)))
}

//export smile_matrix_size
func smile_matrix_size(h C.uint64_t) C.int {
	return C.int(matrixSize(uint64(h)))
}

//export smile_matrix_at
func smile_matrix_at(h C.uint64_t, index C.int) C.double {
	return C.double(matrixAt(uint64(h), int(index)))
}
