package smile

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/sisl/smile-go/pkg/smile/logging"
)

// Registry maps Handles to engine objects on the host side. It holds plain
// references only: releasing a handle forgets the reference and never frees
// the engine object behind it.
//
// A Registry is safe for concurrent use. The engine objects it hands out are
// not; their thread-safety is whatever the engine provides.
type Registry struct {
	id       uuid.UUID
	logger   logging.Logger
	capacity int

	mu       sync.RWMutex
	slots    []slot
	free     []uint32
	interned map[internKey]Handle
	live     int
}

type slot struct {
	gen      uint32
	kind     Kind
	live     bool
	refs     int
	obj      any
	parent   Handle
	children []Handle
}

type internKey struct {
	kind   Kind
	parent Handle
	obj    any
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration and release records.
func WithLogger(l logging.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCapacity bounds the number of live handles. Zero or negative means
// unbounded.
func WithCapacity(n int) RegistryOption {
	return func(r *Registry) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		id:       uuid.New(),
		interned: make(map[internKey]Handle),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.New(nil)
	}
	r.logger = r.logger.With("registry", r.id.String())
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// adapters and the C ABI.
func Default() *Registry { return defaultRegistry }

// ID identifies the registry instance in log records.
func (r *Registry) ID() uuid.UUID { return r.id }

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live
}

// RegisterNodeValue issues a handle for v. Registering the same node value
// again returns the handle already issued for it and adds a reference: the
// handle stays live until Release has been called once per registration.
func (r *Registry) RegisterNodeValue(v NodeValue) (Handle, error) {
	if isNil(v) {
		return 0, ErrNilNodeValue
	}
	return r.insert(KindNodeValue, v, 0)
}

// NodeValue resolves h to the node value it references.
func (r *Registry) NodeValue(h Handle) (NodeValue, error) {
	obj, err := r.lookup(h, KindNodeValue)
	if err != nil {
		return nil, err
	}
	return obj.(NodeValue), nil
}

// Matrix resolves h to the matrix it references.
func (r *Registry) Matrix(h Handle) (Matrix, error) {
	obj, err := r.lookup(h, KindMatrix)
	if err != nil {
		return nil, err
	}
	return obj.(Matrix), nil
}

// Release drops one reference to h. Every call that returned h, whether
// RegisterNodeValue or NodeValueGetMatrix, holds one reference. When the
// last one goes the handle is forgotten, together with every matrix handle
// obtained from it if h is a node value.
func (r *Registry) Release(h Handle) error {
	r.mu.Lock()
	s, err := r.resolveLocked(h, h.Kind())
	if err != nil {
		r.mu.Unlock()
		return err
	}
	s.refs--
	if s.refs > 0 {
		refs := s.refs
		r.mu.Unlock()
		r.logger.Debug(context.Background(), "handle reference dropped", "handle", h.String(), "refs", refs)
		return nil
	}
	released := r.releaseLocked(h, s)
	r.mu.Unlock()

	r.logger.Debug(context.Background(), "handle released", "handle", h.String(), "cascade", released-1)
	return nil
}

func (r *Registry) lookup(h Handle, want Kind) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, err := r.resolveLocked(h, want)
	if err != nil {
		return nil, err
	}
	return s.obj, nil
}

func (r *Registry) resolveLocked(h Handle, want Kind) (*slot, error) {
	if h == 0 || !h.Kind().valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	idx := h.index()
	if uint64(idx) >= uint64(len(r.slots)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	s := &r.slots[idx]
	if !s.live || s.gen != h.generation() || s.kind != h.Kind() {
		return nil, fmt.Errorf("%w: %s", ErrStaleHandle, h)
	}
	if s.kind != want {
		return nil, fmt.Errorf("%w: %s is not a %s", ErrWrongKind, h, want)
	}
	return s, nil
}

func (r *Registry) insert(kind Kind, obj any, parent Handle) (Handle, error) {
	r.mu.Lock()
	h, fresh, err := r.insertLocked(kind, obj, parent)
	r.mu.Unlock()
	if err != nil {
		return 0, err
	}
	if fresh {
		r.logger.Debug(context.Background(), "handle registered", "handle", h.String(), "parent", parent.String())
	}
	return h, nil
}

func (r *Registry) insertLocked(kind Kind, obj any, parent Handle) (Handle, bool, error) {
	var ps *slot
	if parent != 0 {
		var err error
		if ps, err = r.resolveLocked(parent, KindNodeValue); err != nil {
			return 0, false, err
		}
	}

	key := internKey{kind: kind, parent: parent, obj: obj}
	canIntern := internable(obj)
	if canIntern {
		if h, ok := r.interned[key]; ok {
			r.slots[h.index()].refs++
			return h, false, nil
		}
	}

	if r.capacity > 0 && r.live >= r.capacity {
		return 0, false, fmt.Errorf("%w: %d live handles", ErrRegistryFull, r.live)
	}

	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		if uint64(len(r.slots)) >= maxIndices {
			return 0, false, fmt.Errorf("%w: slot space exhausted", ErrRegistryFull)
		}
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{gen: 1})
		if ps != nil {
			// append may have moved the backing array
			ps = &r.slots[parent.index()]
		}
	}

	s := &r.slots[idx]
	s.kind = kind
	s.obj = obj
	s.parent = parent
	s.live = true
	s.refs = 1
	h := makeHandle(kind, s.gen, idx)

	if canIntern {
		r.interned[key] = h
	}
	if ps != nil {
		ps.children = append(ps.children, h)
	}
	r.live++
	return h, true, nil
}

// releaseLocked frees the slot behind h and its children and returns the
// number of handles released.
func (r *Registry) releaseLocked(h Handle, s *slot) int {
	children := s.children
	parent := s.parent

	if internable(s.obj) {
		delete(r.interned, internKey{kind: s.kind, parent: s.parent, obj: s.obj})
	}
	s.obj = nil
	s.live = false
	s.refs = 0
	s.parent = 0
	s.children = nil
	s.gen = nextGeneration(s.gen)
	r.free = append(r.free, h.index())
	r.live--

	if parent != 0 {
		if ps, err := r.resolveLocked(parent, KindNodeValue); err == nil {
			ps.children = slices.DeleteFunc(ps.children, func(c Handle) bool { return c == h })
		}
	}

	n := 1
	for _, c := range children {
		cs, err := r.resolveLocked(c, c.Kind())
		if err != nil {
			continue
		}
		// children go regardless of their own references; the parent slot is
		// already dead, so the child leaves the children list alone
		n += r.releaseLocked(c, cs)
	}
	return n
}
