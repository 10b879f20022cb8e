// Package internalcheck holds repository policy tests: cgo isolation, unsafe
// usage and logging discipline. It has no runtime code and is not intended
// for import.
package internalcheck
