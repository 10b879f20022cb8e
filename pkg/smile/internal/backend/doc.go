// Package backend hosts the thin cgo layer that links the Go API to the
// native SMILE engine. The real implementation lives behind the cgo and
// smile build tags so that the rest of the repository compiles without the
// proprietary headers and libraries.
//
// Building the native layer expects the SMILE distribution unpacked under
// third_party/smile at the repository root:
//
//	go build -tags smile ./...
//
// The smilefake tag links a header-only engine from testdata/fakesmile
// instead, which exercises the shim, the native wrappers and the C ABI
// without the proprietary library:
//
//	go test -tags 'smile smilefake' ./...
//
// This is the only package in the module that imports "C". Every function
// taking an unsafe.Pointer trusts the caller: pointers are reinterpreted as
// DSL_nodeValue* or DSL_Dmatrix* without any check.
package backend
