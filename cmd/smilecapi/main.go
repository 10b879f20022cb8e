// Command smilecapi builds the SMILE node value binding as a C shared
// library for scripting hosts:
//
//	go build -tags smile -buildmode=c-shared -o libsmilecapi.so ./cmd/smilecapi
//
// Every entry point takes and returns registry handles (uint64). Failures are
// reported through sentinel results: 0 for handles, -1 for integers and NaN
// for matrix elements.
//
// Calls go to smile.Default() until smile_open installs a registry built
// from a YAML config (see smile.Config); smile_close returns to the default.
package main

func main() {}
