//go:build cgo && smile && !smilefake

package backend

/*
#cgo CXXFLAGS: -std=c++11 -I${SRCDIR}/../../../../third_party/smile -Wno-deprecated-declarations
#cgo CFLAGS: -I${SRCDIR}/../../../../third_party/smile
#cgo LDFLAGS: -L${SRCDIR}/../../../../third_party/smile -lsmile -lstdc++
*/
import "C"
