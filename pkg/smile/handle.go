package smile

import "fmt"

// Kind discriminates the engine object a Handle refers to.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNodeValue
	KindMatrix
)

func (k Kind) String() string {
	switch k {
	case KindNodeValue:
		return "nodevalue"
	case KindMatrix:
		return "matrix"
	default:
		return "invalid"
	}
}

func (k Kind) valid() bool {
	return k == KindNodeValue || k == KindMatrix
}

// Handle is a tagged reference to an engine object held in a Registry. It is
// a plain integer so it can cross a C ABI unchanged.
//
// Layout: bits 56-63 hold the Kind, bits 32-55 the slot generation and bits
// 0-31 the slot index. The zero Handle is never issued.
type Handle uint64

const (
	indexBits  = 32
	genBits    = 24
	genMask    = 1<<genBits - 1
	kindShift  = indexBits + genBits
	maxIndices = 1 << indexBits
)

func makeHandle(k Kind, gen, index uint32) Handle {
	return Handle(uint64(k)<<kindShift | uint64(gen&genMask)<<indexBits | uint64(index))
}

// Kind returns the kind encoded in the handle.
func (h Handle) Kind() Kind { return Kind(h >> kindShift) }

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool { return h == 0 }

func (h Handle) generation() uint32 { return uint32(h>>indexBits) & genMask }

func (h Handle) index() uint32 { return uint32(h) }

func (h Handle) String() string {
	if h == 0 {
		return "handle(0)"
	}
	return fmt.Sprintf("%s#%d.%d", h.Kind(), h.index(), h.generation())
}

// nextGeneration skips zero so a recycled slot never re-issues a handle
// whose generation bits are all clear.
func nextGeneration(gen uint32) uint32 {
	gen = (gen + 1) & genMask
	if gen == 0 {
		gen = 1
	}
	return gen
}
