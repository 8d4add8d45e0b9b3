package cli

import (
	"context"
	"log/slog"
	"strings"
)

// Run parses argv and, on success, routes execution to the deepest
// resolved command's handler, invoking it exactly once.
//
// Handlers receive the surrounding context; long-running handlers run to
// completion (or error) before Run returns. A handler error is wrapped in
// [HandlerError] and distinguished from parse errors by [ErrorKind].
//
// Early exits (help, debug) and fuzzy mode return the parse result with
// no handler invocation. A root command with no handler invoked with no
// sub-command is a pure router and returns success with a nil response.
func (c *Command) Run(ctx context.Context, argv []string) (*Result, error) {
	res, err := c.Parse(ctx, argv)
	if err != nil {
		return res, err
	}

	if res.EarlyExit || (res.System.Present() && res.System.Fuzzy) {
		return res, nil
	}

	node, ok := c.Lookup(res.Chain...)
	if !ok {
		// Chain was produced by this parse; it always resolves.
		return res, NoHandlerError{Chain: res.Chain}
	}

	if node.handler == nil {
		if len(res.Chain) == 0 {
			return res, nil
		}

		return res, NoHandlerError{Chain: res.Chain}
	}

	c.logger.DebugContext(ctx, "invoking handler",
		slog.String("chain", strings.Join(res.Chain, " ")))

	out, err := node.handler(ctx, res.invocation())
	if err != nil {
		return res, HandlerError{Chain: res.Chain, Err: err}
	}

	res.Handled = true
	res.Response = out

	return res, nil
}

// MustRun is like [Run] but panics on failure (throwing mode).
func (c *Command) MustRun(ctx context.Context, argv []string) *Result {
	res, err := c.Run(ctx, argv)
	if err != nil {
		panic(err)
	}

	return res
}
