package cli

// Frame is one resolved ancestor level of a command chain: the command
// name and its bound argument map.
type Frame struct {
	// Command is the ancestor command's name.
	Command string
	// Args is the ancestor's resolved argument map.
	Args map[string]any
}

// Frames is the ordered chain of ancestor frames, outermost first.
type Frames []Frame

// Lookup resolves a parameter name against the frames, innermost first.
// Same-named flags at different levels are independent namespaces; Lookup
// is a convenience for handlers that want the nearest binding.
func (f Frames) Lookup(name string) (any, bool) {
	for i := len(f) - 1; i >= 0; i-- {
		if v, ok := f[i].Args[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// Invocation carries everything a [Handler] may inspect: its own argument
// map, the read-only ancestor frames, the command chain, positional
// overflow, and any system directives present in the stream.
type Invocation struct {
	// Chain is the ordered list of child command names traversed from the
	// root (exclusive) to the executing command.
	Chain []string
	// Args is the executing command's resolved argument map.
	Args map[string]any
	// Parents is the chain of ancestor frames, outermost first. It is
	// owned by the engine; handlers must not mutate it.
	Parents Frames
	// Positional holds unmatched bare tokens when the command permits
	// positional overflow.
	Positional []string
	// System records reserved directives, or nil when none appeared.
	System *System
}

// Result is the outcome of a parse or run.
//
// A failed parse returns a non-nil error alongside a Result carrying
// whatever was resolved before the failure; [ErrorKind] classifies the
// error. An early exit (help, debug, fuzzy mode) yields a nil error with
// EarlyExit or System set and no handler response.
type Result struct {
	// Chain is the ordered list of child command names traversed. It is
	// empty (never nil) when only the root was reached.
	Chain []string
	// Args is the deepest resolved command's argument map.
	Args map[string]any
	// Parents is the chain of ancestor frames, outermost first.
	Parents Frames
	// Positional holds unmatched bare tokens, if permitted.
	Positional []string
	// System records reserved directives, or nil when none appeared.
	System *System
	// EarlyExit is set when a directive fully answered the invocation
	// (help, debug) and no handler ran.
	EarlyExit bool
	// Handled is set once the execution router ran a handler.
	Handled bool
	// Response is the handler's return value (or the early-exit payload).
	Response any
}

// invocation shapes the result into the handler's view.
func (r *Result) invocation() *Invocation {
	return &Invocation{
		Chain:      r.Chain,
		Args:       r.Args,
		Parents:    r.Parents,
		Positional: r.Positional,
		System:     r.System,
	}
}
