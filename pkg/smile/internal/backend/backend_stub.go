//go:build !cgo || !smile

package backend

import "unsafe"

// Stub implementations for builds without cgo or without the smile tag.
// Check reports why the engine is unavailable; the accessors are never
// reached because callers refuse to wrap native pointers first.

func Check() error { return errUnavailable }

func Version() string { return "" }

func NodeValueGetMatrix(unsafe.Pointer) unsafe.Pointer { return nil }

func NodeValueGetSize(unsafe.Pointer) int { return 0 }

func DmatrixGetSize(unsafe.Pointer) int { return 0 }

func DmatrixGetNumberOfDimensions(unsafe.Pointer) int { return 0 }

func DmatrixGetSizeOfDimension(unsafe.Pointer, int) int { return 0 }

func DmatrixGetItem(unsafe.Pointer, int) float64 { return 0 }
