// Package profile provides optional runtime profiling for programs built
// on argot.
//
// Profiling integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), every operation is a
// no-op with zero runtime overhead. Use [Modes] to list the supported
// profiling modes of the current build.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
