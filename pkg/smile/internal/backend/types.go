package backend

import "errors"

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = errors.New("smile/internal/backend: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo.
	ErrCGONotEnabled = errors.New("smile/internal/backend: cgo not enabled")
)
