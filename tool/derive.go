package tool

import (
	"strings"

	"github.com/ardnew/argot/cli"
	"github.com/ardnew/argot/pkg"
)

// deriveConfig holds the options of one derivation pass.
type deriveConfig struct {
	appName     string
	subcommands bool
}

// DeriveOption applies a configuration option to a derivation pass.
type DeriveOption func(deriveConfig) deriveConfig

// WithAppName overrides the fallback tool name used for a root command.
// The default is [pkg.Name].
func WithAppName(name string) DeriveOption {
	return func(c deriveConfig) deriveConfig {
		c.appName = name

		return c
	}
}

// WithoutSubcommands limits derivation to the root command itself.
func WithoutSubcommands() DeriveOption {
	return func(c deriveConfig) deriveConfig {
		c.subcommands = false

		return c
	}
}

// Derive walks the command tree depth-first and emits one [Tool] per
// command that owns a handler, the root included.
//
// Tool names are derived deterministically from the command chain,
// sanitized to a safe identifier alphabet, falling back to the app name
// for a bare root. The output schema is attached only when the current
// capability version advertises structured output.
//
// Derivation never mutates the tree and is not cached; callers wanting
// memoization can hold the returned slice or register it in a [Registry].
func Derive(root *cli.Command, opts ...DeriveOption) []*Tool {
	cfg := deriveConfig{
		appName:     pkg.Name,
		subcommands: true,
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	var tools []*Tool

	walk(root, root, nil, cfg, &tools)

	return tools
}

// walk visits node and, unless disabled, its children in attachment
// order, appending a Tool for each handler owner.
func walk(
	root, node *cli.Command,
	chain []string,
	cfg deriveConfig,
	tools *[]*Tool,
) {
	if node.HasHandler() {
		*tools = append(*tools, derive(root, node, chain, cfg))
	}

	if !cfg.subcommands {
		return
	}

	for child := range node.Children() {
		sub := append(append([]string{}, chain...), child.Name())
		walk(root, child, sub, cfg, tools)
	}
}

// derive builds one Tool for a handler-owning node.
func derive(
	root, node *cli.Command,
	chain []string,
	cfg deriveConfig,
) *Tool {
	name := cfg.appName
	if len(chain) > 0 {
		name = strings.Join(chain, "-")
	}

	t := &Tool{
		Name:        Sanitize(name),
		Description: node.Description(),
		InputSchema: schemaFor(node.Args()),
		root:        root,
		node:        node,
		chain:       append([]string{}, chain...),
	}

	if supportsStructured(Current()) {
		t.OutputSchema = node.OutputSchema()
	}

	return t
}

// Sanitize maps an arbitrary name onto the safe tool identifier alphabet
// [a-z0-9_-], collapsing runs of other characters to single hyphens.
func Sanitize(name string) string {
	var sb strings.Builder

	hyphen := false

	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
			r == '_' || r == '-':
			sb.WriteRune(r)

			hyphen = false

		default:
			if !hyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}

			hyphen = true
		}
	}

	return strings.TrimRight(sb.String(), "-")
}
