package tool

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/ardnew/argot/arg"
	"github.com/ardnew/argot/cli"
	"github.com/ardnew/argot/pkg"
)

// Content is one block of a response envelope's textual fallback.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Envelope is the response shape of one structured call. Content is
// always present; StructuredContent only when the capability version in
// effect at invocation supports structured output.
type Envelope struct {
	Content           []Content `json:"content"`
	StructuredContent any       `json:"structuredContent,omitempty"`
	IsError           bool      `json:"isError,omitempty"`
	ErrorKind         string    `json:"errorKind,omitempty"`
}

// Tool is one discrete external-call entry derived from a handler-owning
// command.
type Tool struct {
	// Name is derived deterministically from the command chain and
	// sanitized to a safe identifier alphabet.
	Name string `json:"name"`
	// Description is the command's help description.
	Description string `json:"description,omitempty"`
	// InputSchema declares one property per flag.
	InputSchema *Schema `json:"inputSchema"`
	// OutputSchema is the command's declared output document. It is nil
	// whenever the capability version at derivation predates structured
	// output advertisement, regardless of what the command declared.
	OutputSchema map[string]any `json:"outputSchema,omitempty"`

	root  *cli.Command
	node  *cli.Command
	chain []string
}

// Invoke performs the full argv-equivalent round trip for this tool with
// a structured argument object instead of tokens.
//
// The arguments are serialized back into tokens honoring each flag's
// FlagOnly/Multiple conventions, parsed and executed through the exact
// path a CLI invocation takes, and the outcome is wrapped in the response
// envelope. Invoke never lets a coercion or handler error escape; every
// failure becomes a structured failure envelope tagged with its error
// kind ("handler_error" for failures raised inside the handler).
//
// A {"help": true} argument short-circuits to a rendered help payload
// without running the handler, even when mandatory flags are absent.
func (t *Tool) Invoke(ctx context.Context, args map[string]any) *Envelope {
	if help, ok := args["help"]; ok && truthy(help) {
		return &Envelope{
			Content: []Content{{Type: "text", Text: t.node.Help()}},
		}
	}

	tokens, err := t.tokens(args)
	if err != nil {
		return fail(err)
	}

	res, err := t.root.Run(ctx, tokens)
	if err != nil {
		return fail(err)
	}

	return t.respond(res)
}

// tokens serializes a structured argument object into the equivalent
// argv token stream for this tool's command chain.
func (t *Tool) tokens(args map[string]any) ([]string, error) {
	tokens := append([]string{}, t.chain...)

	set := t.node.Args()

	// Declared flags first, in declaration order for determinism.
	for a := range set.All() {
		v, ok := args[a.Name]
		if !ok || v == nil {
			continue
		}

		tokens = appendFlag(tokens, a, v)
	}

	// Unknown keys pass through as flag-shaped tokens so the parse
	// engine reports them with its own error taxonomy. The help key is
	// consumed by the short-circuit in Invoke and never serialized, and
	// keys spelling a reserved directive are rejected here: a structured
	// argument must never flip an engine mode.
	for k, v := range args {
		if k == "help" {
			continue
		}

		if _, ok := set.Named(k); ok {
			continue
		}

		tok := "--" + k
		if cli.ReservedToken(tok) {
			return nil, cli.UnknownFlagError{Token: tok}
		}

		tokens = append(tokens, tok, fmt.Sprint(v))
	}

	return tokens, nil
}

// appendFlag emits the token form of one bound argument.
func appendFlag(tokens []string, a *arg.Arg, v any) []string {
	if a.FlagOnly {
		if truthy(v) {
			tokens = append(tokens, a.Canon())
		}

		return tokens
	}

	if a.Multiple {
		// JSON decoders produce []any; Go callers naturally pass []string.
		switch vals := v.(type) {
		case []any:
			for _, e := range vals {
				tokens = append(tokens, a.Canon(), literal(e))
			}

			return tokens

		case []string:
			for _, e := range vals {
				tokens = append(tokens, a.Canon(), e)
			}

			return tokens
		}
	}

	return append(tokens, a.Canon(), literal(v))
}

// respond wraps a successful run in the response envelope, attaching
// structured content only when the capability version permits.
func (t *Tool) respond(res *cli.Result) *Envelope {
	text := ""

	if res.Response != nil {
		if s, ok := res.Response.(string); ok {
			text = s
		} else {
			data, err := json.Marshal(res.Response)
			if err != nil {
				return fail(pkg.ErrJSONMarshal.Wrap(err))
			}

			text = string(data)
		}
	}

	env := &Envelope{
		Content: []Content{{Type: "text", Text: text}},
	}

	if supportsStructured(Current()) {
		env.StructuredContent = res.Response
	}

	return env
}

// fail wraps any parse or handler error in a failure envelope.
func fail(err error) *Envelope {
	kind := cli.ErrorKind(err)

	return &Envelope{
		Content: []Content{{
			Type: "text",
			Text: fmt.Sprintf("%s: %v", kind, err),
		}},
		IsError:   true,
		ErrorKind: kind,
	}
}

// truthy interprets loosely-typed boolean arguments.
func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		t, err := strconv.ParseBool(b)

		return err == nil && t
	case float64:
		return b != 0
	default:
		return false
	}
}

// literal renders an argument value as a single argv token.
func literal(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return fmt.Sprint(v)
}
