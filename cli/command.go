package cli

import (
	"context"
	"iter"
	"sync/atomic"

	"github.com/ardnew/argot/arg"
	"github.com/ardnew/argot/log"
	"github.com/ardnew/argot/pkg"
)

// Handler executes one command level after a successful parse.
//
// The returned value becomes the parse result's response; when the command
// was invoked through the tool bridge it also becomes the structured
// content of the call's envelope. A returned error is wrapped in
// [HandlerError] and never swallowed.
type Handler func(ctx context.Context, inv *Invocation) (any, error)

// Command is a parser for one command level: a flag set, an optional
// handler, and named child commands, recursively.
//
// A Command is constructed once at program-definition time and seals
// itself when the first parse begins; mutation afterwards fails with
// [pkg.ErrSealedCommand].
type Command struct {
	name    string
	help    string
	args    *arg.Set
	handler Handler
	order   []string
	child   map[string]*Command
	parent  *Command
	output  map[string]any
	logger  log.Logger

	positional bool
	sealed     atomic.Bool
}

// Option applies a configuration option to a Command under construction.
type Option func(*Command) error

// New constructs a Command with the given name and options.
//
// Declaration errors (duplicate flag names or tokens, reserved directive
// spellings, malformed kinds, duplicate child names) are returned
// immediately and are never deferred to parse time.
func New(name string, opts ...Option) (*Command, error) {
	if name == "" {
		return nil, arg.DeclarationError{Reason: "command name must not be empty"}
	}

	c := &Command{
		name:  name,
		child: make(map[string]*Command),
	}

	c.args, _ = arg.NewSet()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// MustNew is like [New] but panics on declaration errors.
func MustNew(name string, opts ...Option) *Command {
	c, err := New(name, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// WithHelp sets the command description rendered in help output and tool
// descriptions.
func WithHelp(help string) Option {
	return func(c *Command) error {
		c.help = help

		return nil
	}
}

// WithArgs declares flags on the command.
func WithArgs(decls ...arg.Arg) Option {
	return func(c *Command) error {
		return c.AddArgs(decls...)
	}
}

// WithHandler sets the command's handler. A command without a handler is
// a pure router to its children.
func WithHandler(h Handler) Option {
	return func(c *Command) error {
		c.handler = h

		return nil
	}
}

// WithCommand attaches a child command.
func WithCommand(child *Command) Option {
	return func(c *Command) error {
		return c.AddCommand(child)
	}
}

// WithPositional permits unmatched bare tokens to collect as positional
// overflow instead of failing the parse.
func WithPositional() Option {
	return func(c *Command) error {
		c.positional = true

		return nil
	}
}

// WithOutputSchema declares the structural schema of the handler's return
// value. The tool bridge advertises it only when the current capability
// version supports structured output.
func WithOutputSchema(schema map[string]any) Option {
	return func(c *Command) error {
		c.output = schema

		return nil
	}
}

// WithLogger attaches a logger used by the parse engine for trace output.
func WithLogger(l log.Logger) Option {
	return func(c *Command) error {
		c.logger = l

		return nil
	}
}

// AddArgs declares additional flags. It fails once the tree is sealed.
func (c *Command) AddArgs(decls ...arg.Arg) error {
	if c.root().sealed.Load() {
		return pkg.ErrSealedCommand
	}

	for _, d := range decls {
		for _, tok := range d.Tokens {
			if ReservedToken(tok) {
				return ReservedTokenError{Token: tok}
			}
		}

		if err := c.args.Add(d); err != nil {
			return err
		}
	}

	return nil
}

// AddCommand attaches additional child commands. It fails once the tree
// is sealed.
func (c *Command) AddCommand(children ...*Command) error {
	if c.root().sealed.Load() {
		return pkg.ErrSealedCommand
	}

	for _, child := range children {
		if _, ok := c.child[child.name]; ok {
			return DuplicateCommandError{Name: child.name}
		}

		child.parent = c
		c.child[child.name] = child
		c.order = append(c.order, child.name)
	}

	return nil
}

// Name returns the command's name.
func (c *Command) Name() string { return c.name }

// Description returns the command's help description.
func (c *Command) Description() string { return c.help }

// Args returns the command's flag declarations.
func (c *Command) Args() *arg.Set { return c.args }

// HasHandler reports whether the command owns a handler.
func (c *Command) HasHandler() bool { return c.handler != nil }

// OutputSchema returns the declared output schema document, or nil.
func (c *Command) OutputSchema() map[string]any { return c.output }

// Children returns an iterator over child commands in attachment order.
func (c *Command) Children() iter.Seq[*Command] {
	return func(yield func(*Command) bool) {
		for _, name := range c.order {
			if !yield(c.child[name]) {
				return
			}
		}
	}
}

// Lookup resolves a chain of child command names starting at c.
func (c *Command) Lookup(chain ...string) (*Command, bool) {
	node := c

	for _, name := range chain {
		next, ok := node.child[name]
		if !ok {
			return nil, false
		}

		node = next
	}

	return node, true
}

// root walks parent links to the tree root. Sealing is tracked there so
// one parse freezes the whole definition.
func (c *Command) root() *Command {
	node := c
	for node.parent != nil {
		node = node.parent
	}

	return node
}

// seal freezes the command tree. The first parse calls it; explicit calls
// are permitted and idempotent.
func (c *Command) seal() {
	c.root().sealed.Store(true)
}

// chainNames returns the child names from the root (exclusive) down to c.
func (c *Command) chainNames() []string {
	if c.parent == nil {
		return []string{}
	}

	names := c.parent.chainNames()

	return append(names, c.name)
}
