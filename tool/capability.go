package tool

import (
	"sync"

	"github.com/ardnew/argot/cli"
)

const (
	// VersionStructuredOutput is the first capability version that
	// advertises output schemas and attaches structured content to
	// response envelopes.
	VersionStructuredOutput = "2025-06-18"

	// DefaultVersion is the capability version assumed until a caller
	// explicitly negotiates another.
	DefaultVersion = VersionStructuredOutput
)

// current is the process-wide negotiated capability version. It is
// reassigned only by [SetCurrent]; nothing inside parsing mutates it.
//
//nolint:gochecknoglobals
var current = struct {
	sync.RWMutex
	version string
}{version: DefaultVersion}

// Current returns the capability version used for subsequent derivations
// and invocations.
func Current() string {
	current.RLock()
	defer current.RUnlock()

	return current.version
}

// SetCurrent rebinds the capability version for subsequent derivations
// and invocations within this process. An empty version restores
// [DefaultVersion].
func SetCurrent(version string) {
	current.Lock()
	defer current.Unlock()

	if version == "" {
		version = DefaultVersion
	}

	current.version = version
}

// ApplySystem applies a parsed capability-version override directive.
// It is a no-op when sys carries no override.
func ApplySystem(sys *cli.System) {
	if sys.Present() && sys.Capability != "" {
		SetCurrent(sys.Capability)
	}
}

// supportsStructured reports whether the given capability version
// advertises structured output. Versions are date-shaped, so the
// comparison is lexical.
func supportsStructured(version string) bool {
	return version >= VersionStructuredOutput
}
