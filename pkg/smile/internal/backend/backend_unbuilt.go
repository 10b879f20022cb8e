//go:build cgo && !smile

package backend

var errUnavailable = ErrNotBuilt
