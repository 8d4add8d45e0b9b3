//go:build !pprof

package main

import "context"

// startProfiling is a no-op when built without the pprof tag.
func startProfiling(context.Context) (stop func()) { return func() {} }
