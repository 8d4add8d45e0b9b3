// Package tool projects a command tree onto a structured tool-call
// surface and routes incoming calls back through the same parse and
// execution path the CLI uses.
//
// [Derive] walks a tree depth-first and emits one [Tool] per command that
// owns a handler. Each Tool carries an input schema translated from the
// command's flag declarations and an Invoke method performing the full
// argv-equivalent round trip:
//
//	tools := tool.Derive(root)
//	env := tools[0].Invoke(ctx, map[string]any{"input": "x"})
//
// Invoke serializes the argument object into tokens honoring each flag's
// conventions, parses and executes exactly as a real CLI invocation
// would, and wraps the outcome in the call's response [Envelope]. Parse
// and handler failures become failure envelopes, never panics or lost
// errors, each tagged with a stable error kind.
//
// The bridge advertises output schemas and attaches structured content
// only when the negotiated capability version is at or above
// [VersionStructuredOutput]. The current version is the one piece of
// process-wide state in argot; it changes only through [SetCurrent]
// (typically applied from a --s-capability directive via [ApplySystem]),
// never implicitly.
//
// Transport concerns (stdio framing, HTTP listeners, authentication) are
// deliberately left to the caller.
package tool
