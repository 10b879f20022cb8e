package main

import (
	"context"
	"errors"
	"math"
	"sync"
	"unsafe"

	"github.com/sisl/smile-go/pkg/smile"
	"github.com/sisl/smile-go/pkg/smile/logging"
)

var (
	baseLogger = logging.New(nil).With("component", "smilecapi")

	// Installed by smile_open. Until then, and after smile_close, calls go to
	// smile.Default() and log through baseLogger.
	stateMu  sync.RWMutex
	registry *smile.Registry
	library  *smile.Library
	logger   logging.Logger
)

func current() *smile.Registry {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if registry == nil {
		return smile.Default()
	}
	return registry
}

func currentLogger() logging.Logger {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if logger == nil {
		return baseLogger
	}
	return logger
}

func reject(op string, h uint64, err error) {
	currentLogger().Warn(context.Background(), "call rejected", "op", op, "handle", smile.Handle(h).String(), "error", err)
}

// open installs a registry configured from the YAML file at path. An empty
// path uses the zero Config. Builds without the native engine still get the
// configured registry so in-process engines keep working.
func open(path string) int {
	cfg := &smile.Config{}
	if path != "" {
		var err error
		if cfg, err = smile.LoadConfig(path); err != nil {
			currentLogger().Error(context.Background(), "open rejected", "path", path, "error", err)
			return -1
		}
	}
	l := cfg.NewLogger().With("component", "smilecapi")

	var reg *smile.Registry
	lib, err := smile.Open(*cfg)
	switch {
	case err == nil:
		reg = lib.Registry()
	case errors.Is(err, smile.ErrNotBuilt), errors.Is(err, smile.ErrCGONotEnabled):
		l.Warn(context.Background(), "native engine unavailable, registry opened without it", "error", err)
		reg = cfg.NewRegistry()
	default:
		currentLogger().Error(context.Background(), "open rejected", "path", path, "error", err)
		return -1
	}

	stateMu.Lock()
	prev := library
	library, registry, logger = lib, reg, l
	stateMu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return 0
}

// closeLib drops the registry installed by open and falls back to
// smile.Default(). Handles issued by the dropped registry become unknown.
func closeLib() int {
	stateMu.Lock()
	lib := library
	library, registry, logger = nil, nil, nil
	stateMu.Unlock()
	if lib != nil {
		if err := lib.Close(); err != nil {
			reject("close", 0, err)
			return -1
		}
	}
	return 0
}

func registerNodeValue(ptr unsafe.Pointer) uint64 {
	v, err := smile.WrapNativeNodeValue(ptr)
	if err != nil {
		currentLogger().Warn(context.Background(), "call rejected", "op", "register", logging.Redacted("pointer"), "error", err)
		return 0
	}
	h, err := current().RegisterNodeValue(v)
	if err != nil {
		reject("register", 0, err)
		return 0
	}
	return uint64(h)
}

func getMatrix(h uint64) uint64 {
	mh, err := current().NodeValueGetMatrix(smile.Handle(h))
	if err != nil {
		reject("nodevalue_GetMatrix", h, err)
		return 0
	}
	return uint64(mh)
}

func getSize(h uint64) int {
	n, err := current().NodeValueGetSize(smile.Handle(h))
	if err != nil {
		reject("nodevalue_GetSize", h, err)
		return -1
	}
	return n
}

func release(h uint64) int {
	if err := current().Release(smile.Handle(h)); err != nil {
		reject("release", h, err)
		return -1
	}
	return 0
}

func matrixSize(h uint64) int {
	n, err := current().MatrixSize(smile.Handle(h))
	if err != nil {
		reject("matrix_size", h, err)
		return -1
	}
	return n
}

func matrixAt(h uint64, index int) float64 {
	v, err := current().MatrixAt(smile.Handle(h), index)
	if err != nil {
		reject("matrix_at", h, err)
		return math.NaN()
	}
	return v
}
