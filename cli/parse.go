package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/argot/arg"
	"github.com/ardnew/argot/envfile"
	"github.com/ardnew/argot/log"
)

// Parse walks argv against the command tree rooted at c and produces a
// validated, coerced parse result.
//
// The engine proceeds through path resolution (leading bare tokens match
// child command names), flag scanning, validation (mandatory checks and
// defaults), and coercion. The first failure short-circuits the parse; no
// partial success is reported. Reserved system directives are extracted
// from the stream before any of this begins.
//
// Parse never invokes a handler; see [Command.Run].
func (c *Command) Parse(ctx context.Context, argv []string) (*Result, error) {
	c.seal()

	res := &Result{Chain: []string{}}

	sys, tokens, err := extractSystem(argv)
	if err != nil {
		return res, err
	}

	res.System = sys

	if sys.Present() && sys.Debug {
		res.EarlyExit = true
		res.Response = c.debugReport(sys)

		return res, nil
	}

	if sys.Present() && sys.Help {
		node, chain := c.resolveHelp(tokens)

		res.EarlyExit = true
		res.Chain = chain
		res.Response = node.Help()

		return res, nil
	}

	p := &parser{
		ctx:    ctx,
		sys:    sys,
		logger: c.logger,
	}

	if sys.Present() && sys.EnvFile != "" {
		p.env, err = envfile.Load(sys.EnvFile)
		if err != nil {
			return res, err
		}
	}

	return p.parse(c, tokens, res)
}

// MustParse is like [Parse] but panics on failure (throwing mode).
func (c *Command) MustParse(ctx context.Context, argv []string) *Result {
	res, err := c.Parse(ctx, argv)
	if err != nil {
		panic(err)
	}

	return res
}

// parser holds the state of one parse walk.
type parser struct {
	ctx    context.Context
	sys    *System
	env    map[string]any
	logger log.Logger
}

// fuzzy reports whether fuzzy/dry-run mode is active for this parse.
func (p *parser) fuzzy() bool {
	return p.sys.Present() && p.sys.Fuzzy
}

// parse consumes tokens against node, descending into children as their
// names appear, and fills res with the deepest level's bindings.
func (p *parser) parse(node *Command, tokens []string, res *Result) (*Result, error) {
	var frames Frames

	chain := []string{}

	for {
		occ := make(map[string][]string)

		var (
			positional []string
			descend    *Command
			rawOnly    bool
		)

		i := 0

		for i < len(tokens) {
			tok := tokens[i]

			if tok == "--" && !rawOnly {
				// Everything after the terminator is positional.
				rawOnly = true
				i++

				continue
			}

			if isFlag(tok) && !rawOnly {
				name, inline, hasInline := splitInline(tok)

				a, ok := node.args.Lookup(name)
				if !ok {
					return res, UnknownFlagError{
						Token:   name,
						Suggest: suggest(name, candidates(node)),
					}
				}

				switch {
				case a.FlagOnly:
					// Presence alone conveys true; an inline value is
					// honored as an explicit boolean literal.
					if hasInline {
						occ[a.Name] = append(occ[a.Name], inline)
					} else {
						occ[a.Name] = append(occ[a.Name], "true")
					}

				case hasInline:
					occ[a.Name] = append(occ[a.Name], inline)

				default:
					if i+1 >= len(tokens) {
						return res, MissingValueError{Token: name}
					}

					// The following token is always this flag's value,
					// even when it spells a child command name.
					i++
					occ[a.Name] = append(occ[a.Name], tokens[i])
				}

				i++

				continue
			}

			// Bare token: a child name is expected only while no
			// positional overflow has been collected at this level.
			if len(positional) == 0 && !rawOnly {
				if child, ok := node.child[tok]; ok {
					descend = child
					i++

					break
				}
			}

			if !node.positional {
				return res, UnexpectedArgError{Token: tok}
			}

			positional = append(positional, tok)
			i++
		}

		// Parent flags are resolved before descending so the child's
		// handler sees the parent's bound values, not raw tokens.
		args, err := p.finalize(node, occ)
		if err != nil {
			return res, err
		}

		p.logger.TraceContext(p.ctx, "level resolved",
			slog.String("command", node.name),
			slog.Int("flags", len(args)),
			slog.Bool("descend", descend != nil))

		if descend == nil {
			res.Chain = chain
			res.Args = args
			res.Parents = frames
			res.Positional = positional

			return res, nil
		}

		frames = append(frames, Frame{Command: node.name, Args: args})
		chain = append(chain, descend.name)
		node = descend
		tokens = tokens[i:]
	}
}

// finalize applies validation and coercion for one command level:
// supplied occurrences are coerced (with enum checks), then unset flags
// fall back through the default layer (declared default, then the
// environment-merge file), and finally mandatory enforcement runs unless
// fuzzy mode suppressed it.
func (p *parser) finalize(
	node *Command,
	occ map[string][]string,
) (map[string]any, error) {
	args := make(map[string]any, node.args.Len())

	for a := range node.args.All() {
		raws, supplied := occ[a.Name]
		if supplied {
			v, err := arg.Coerce(p.ctx, a, raws)
			if err != nil {
				return nil, err
			}

			args[a.Name] = v

			continue
		}

		if a.Default != nil {
			args[a.Name] = a.Default

			continue
		}

		if v, ok := p.env[a.Name]; ok {
			v, err := p.coerceEnv(a, v)
			if err != nil {
				return nil, err
			}

			args[a.Name] = v

			continue
		}

		if a.Mandatory && !p.fuzzy() {
			return nil, MissingArgError{Name: a.Name, Token: a.Canon()}
		}
	}

	return args, nil
}

// coerceEnv adapts a value from the environment-merge file to the flag's
// declared kind. File values belong to the default layer, so no enum
// check applies.
func (p *parser) coerceEnv(a *arg.Arg, v any) (any, error) {
	shadow := *a
	shadow.Enum = nil

	switch val := v.(type) {
	case string:
		if a.Kind == arg.KindString && !a.Multiple {
			return val, nil
		}

		return arg.Coerce(p.ctx, &shadow, []string{val})

	case []any:
		raws := make([]string, len(val))
		for i, e := range val {
			raws[i] = fmt.Sprint(e)
		}

		shadow.Multiple = true

		return arg.Coerce(p.ctx, &shadow, raws)

	default:
		if a.Kind == arg.KindNumber {
			if f, ok := toFloat(v); ok {
				return f, nil
			}
		}

		return v, nil
	}
}

// toFloat widens any decoded numeric type to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}

	return 0, false
}

// isFlag reports whether a token uses the reserved flag prefix.
// A lone "-" (conventionally stdin) and negative numbers are not flags.
func isFlag(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' || tok == "--" {
		return false
	}

	if tok[1] >= '0' && tok[1] <= '9' {
		return false
	}

	return true
}

// splitInline splits the "--flag=value" form.
func splitInline(tok string) (name, value string, ok bool) {
	return strings.Cut(tok, "=")
}

// resolveHelp best-effort resolves the command a help request refers to,
// ignoring flag tokens and validation entirely. Mandatory flags absent
// from the stream never block help.
func (c *Command) resolveHelp(tokens []string) (*Command, []string) {
	node := c
	chain := []string{}

	for _, tok := range tokens {
		if isFlag(tok) {
			continue
		}

		if child, ok := node.child[tok]; ok {
			node = child
			chain = append(chain, tok)
		}
	}

	return node, chain
}
