package smile

import (
	"errors"

	"github.com/sisl/smile-go/pkg/smile/internal/backend"
)

var (
	// ErrNotBuilt reports that the native SMILE engine was not linked into the
	// current binary. Build with -tags smile to enable it.
	ErrNotBuilt = errors.New("smile: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native engine.
	ErrCGONotEnabled = errors.New("smile: cgo not enabled")

	// ErrLibraryClosed is returned by Library.Close when called twice.
	ErrLibraryClosed = errors.New("smile: library already closed")

	// ErrInvalidHandle reports a handle that was never issued by the registry:
	// the zero handle, an unknown kind or an out-of-range slot.
	ErrInvalidHandle = errors.New("smile: invalid handle")

	// ErrStaleHandle reports a handle whose registry entry has been released.
	ErrStaleHandle = errors.New("smile: stale handle")

	// ErrWrongKind reports a live handle that refers to a different kind of
	// object than the operation expects.
	ErrWrongKind = errors.New("smile: handle refers to a different kind")

	// ErrNilNodeValue is returned when registering or wrapping a nil node value.
	ErrNilNodeValue = errors.New("smile: nil node value")

	// ErrNilMatrix is returned when a node value has no matrix attached.
	ErrNilMatrix = errors.New("smile: node value has no matrix")

	// ErrIndexOutOfRange reports a flat matrix index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("smile: matrix index out of range")

	// ErrRegistryFull is returned when the registry reached its capacity.
	ErrRegistryFull = errors.New("smile: handle registry full")
)

// RemapError converts backend errors to public API errors.
func RemapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrNotBuilt):
		return ErrNotBuilt
	case errors.Is(err, backend.ErrCGONotEnabled):
		return ErrCGONotEnabled
	default:
		return err
	}
}
