package smile

import "github.com/sisl/smile-go/pkg/smile/internal/backend"

var (
	Version         = "v0.0.0-in-progress"
	UpstreamRelease = "unknown"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the version string reported by the native bindings if
// available; otherwise it falls back to the pinned SMILE release.
func UpstreamVersion() string {
	if v := backend.Version(); v != "" {
		return v
	}
	return UpstreamRelease
}
