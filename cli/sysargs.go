package cli

import (
	"strings"
)

// Reserved system directive spellings. Each has a single canonical,
// non-overridable spelling recognized anywhere in the token stream,
// independent of any command's own flag set.
const (
	// DirPrefix reserves the whole "--s-" namespace for directives so
	// future additions never collide with user flags.
	DirPrefix = "--s-"

	// DirDebug requests an introspection dump and an early exit without
	// handler execution.
	DirDebug = "--s-debug"

	// DirFuzzy enables fuzzy/dry-run mode: mandatory-flag enforcement and
	// handler invocation are suppressed while coercion and enum checks
	// still run on supplied values.
	DirFuzzy = "--s-fuzzy"

	// DirEnvFile takes one following token, a config file path, whose
	// key/value pairs merge into the flag-default layer.
	DirEnvFile = "--s-with-env"

	// DirCapability takes one following token and records a capability
	// version override for the schema bridge.
	DirCapability = "--s-capability"

	// DirHelp and DirHelpShort request rendered help for the resolved
	// command and an early exit.
	DirHelp      = "--help"
	DirHelpShort = "-h"
)

// System is the flat record of engine-reserved directives found in one
// token stream. A nil *System in a [Result] means no directive appeared.
type System struct {
	// Debug requests an introspection dump without handler execution.
	Debug bool
	// Fuzzy suppresses mandatory checks and handler execution.
	Fuzzy bool
	// Help requests rendered help for the resolved command.
	Help bool
	// EnvFile is the environment-merge file path, if requested.
	EnvFile string
	// Capability is the capability version override, if requested.
	Capability string

	present bool
}

// Present reports whether at least one reserved directive appeared.
func (s *System) Present() bool { return s != nil && s.present }

// ReservedToken reports whether a spelling belongs to the directive
// vocabulary. Reserved spellings are rejected at flag declaration time,
// and the tool bridge refuses to pass them through as unknown keys.
func ReservedToken(tok string) bool {
	switch tok {
	case DirHelp, DirHelpShort:
		return true
	}

	return strings.HasPrefix(tok, DirPrefix)
}

// extractSystem scans tokens for reserved directives at any position,
// removing them (and their value tokens) from the stream before ordinary
// flag parsing begins. The remaining tokens are returned in order.
func extractSystem(tokens []string) (*System, []string, error) {
	sys := new(System)
	rest := make([]string, 0, len(tokens))

	take := func(i int, dir string) (string, int, error) {
		// Accept both "--s-dir value" and "--s-dir=value" forms.
		if tok, val, ok := strings.Cut(tokens[i], "="); ok && tok == dir {
			if val == "" {
				return "", i, DirectiveValueError{Directive: dir}
			}

			return val, i, nil
		}

		if i+1 >= len(tokens) {
			return "", i, DirectiveValueError{Directive: dir}
		}

		return tokens[i+1], i + 1, nil
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		name, _, _ := strings.Cut(tok, "=")

		switch name {
		case DirDebug:
			sys.Debug, sys.present = true, true

		case DirFuzzy:
			sys.Fuzzy, sys.present = true, true

		case DirHelp, DirHelpShort:
			sys.Help, sys.present = true, true

		case DirEnvFile:
			val, next, err := take(i, DirEnvFile)
			if err != nil {
				return nil, nil, err
			}

			sys.EnvFile, sys.present = val, true
			i = next

		case DirCapability:
			val, next, err := take(i, DirCapability)
			if err != nil {
				return nil, nil, err
			}

			sys.Capability, sys.present = val, true
			i = next

		default:
			rest = append(rest, tok)
		}
	}

	if !sys.present {
		return nil, rest, nil
	}

	return sys, rest, nil
}
