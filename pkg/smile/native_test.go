//go:build !cgo || !smile

package smile

import (
	"errors"
	"testing"
	"unsafe"
)

func TestWrapNativeNodeValueWithoutEngine(t *testing.T) {
	var x int
	v, err := WrapNativeNodeValue(unsafe.Pointer(&x))
	if !errors.Is(err, ErrNotBuilt) && !errors.Is(err, ErrCGONotEnabled) {
		t.Fatalf("unexpected error from WrapNativeNodeValue: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil node value, got %#v", v)
	}
}

func TestOpenReturnsStubError(t *testing.T) {
	lib, err := Open(Config{})
	if !errors.Is(err, ErrCGONotEnabled) && !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("unexpected error from Open: %v", err)
	}
	if lib != nil {
		t.Fatalf("expected nil library, got %+v", lib)
	}
}
