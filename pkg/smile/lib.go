package smile

import (
	"context"

	"github.com/sisl/smile-go/pkg/smile/internal/backend"
)

// Library represents an opened binding to the native SMILE engine together
// with the handle registry that serves it.
type Library struct {
	cfg      Config
	registry *Registry
	closed   bool
}

// Open checks that the native engine is linked in and prepares a registry
// configured from cfg. Builds without the engine return ErrNotBuilt or
// ErrCGONotEnabled; the in-memory engine and NewRegistry remain usable.
func Open(cfg Config) (*Library, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := backend.Check(); err != nil {
		return nil, RemapError(err)
	}

	lib := &Library{cfg: cfg, registry: cfg.NewRegistry()}
	lib.registry.logger.Info(context.Background(), "smile library opened", "upstream", UpstreamVersion())
	return lib, nil
}

// Registry returns the registry bound to the library.
func (l *Library) Registry() *Registry {
	if l == nil {
		return nil
	}
	return l.registry
}

// Close drops the library's registry. Engine objects are left untouched.
// The method is idempotent, returning ErrLibraryClosed when called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	if l.closed {
		return ErrLibraryClosed
	}
	l.closed = true
	l.registry = nil
	return nil
}
