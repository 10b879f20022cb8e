// Package smile exposes the node value slice of the SMILE graphical-model
// engine through tagged handles.
//
// Engine objects never cross the API boundary directly. A Registry hands
// out Handles, plain integers carrying a kind and a generation, and
// translates them back to engine references on every call:
//
//	reg := smile.NewRegistry()
//	h, err := reg.RegisterNodeValue(v)
//	if err != nil {
//	    return err
//	}
//	defer reg.Release(h)
//
//	mh, err := reg.NodeValueGetMatrix(h) // aliases v.Matrix()
//	n, err := reg.NodeValueGetSize(h)    // v.Size()
//
// # Ownership
//
// The registry never owns what it references. Node values and matrices are
// created and destroyed by the engine; releasing a handle only forgets it.
// A matrix handle is valid only while the node value it came from is
// registered and alive in the engine.
//
// # Handle validation
//
// Zero, released, recycled and wrong-kind handles are reported as errors
// (ErrInvalidHandle, ErrStaleHandle, ErrWrongKind). Raw pointers passed to
// WrapNativeNodeValue are trusted beyond a nil check.
//
// # Native engine
//
// The native engine is linked only with -tags smile and cgo enabled. Other
// builds compile the same API; Open and WrapNativeNodeValue then return
// ErrNotBuilt or ErrCGONotEnabled, and package memengine provides pure-Go
// node values.
package smile
