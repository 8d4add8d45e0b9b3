package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ardnew/argot/arg"
	"github.com/ardnew/argot/envfile"
)

// UnknownFlagError is returned when a flag-looking token matches no
// declaration at the resolved command level.
type UnknownFlagError struct {
	// Token is the unrecognized spelling.
	Token string
	// Suggest holds close matches among declared tokens and child
	// command names, best first.
	Suggest []string
}

func (e UnknownFlagError) Error() string {
	if len(e.Suggest) == 0 {
		return fmt.Sprintf("unknown flag: %q", e.Token)
	}

	return fmt.Sprintf("unknown flag: %q (did you mean %s?)",
		e.Token, strings.Join(e.Suggest, ", "))
}

// UnexpectedArgError is returned when a bare token matches no child
// command name and the command does not accept positional arguments.
type UnexpectedArgError struct {
	// Token is the unexpected token.
	Token string
}

func (e UnexpectedArgError) Error() string {
	return fmt.Sprintf("unexpected argument: %q", e.Token)
}

// MissingArgError is returned when a mandatory flag resolves no value and
// no default. It is suppressed entirely in fuzzy mode.
type MissingArgError struct {
	// Name is the mandatory parameter.
	Name string
	// Token is its canonical spelling.
	Token string
}

func (e MissingArgError) Error() string {
	return fmt.Sprintf("missing mandatory flag: %s", e.Token)
}

// MissingValueError is returned when a value-taking flag is the final
// token of the stream, leaving it nothing to consume.
type MissingValueError struct {
	// Token is the flag spelling missing its value.
	Token string
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("flag %q requires a value", e.Token)
}

// NoHandlerError is returned by the execution router when the deepest
// resolved command owns no handler and is not a bare root acting as a
// pure router.
type NoHandlerError struct {
	// Chain is the command chain that was resolved.
	Chain []string
}

func (e NoHandlerError) Error() string {
	if len(e.Chain) == 0 {
		return "no handler for command"
	}

	return fmt.Sprintf("no handler for command: %s", strings.Join(e.Chain, " "))
}

// ReservedTokenError is returned at declaration time when a user flag
// collides with a reserved system directive spelling.
type ReservedTokenError struct {
	// Token is the reserved spelling.
	Token string
}

func (e ReservedTokenError) Error() string {
	return fmt.Sprintf("flag token %q is reserved for system directives", e.Token)
}

// DirectiveValueError is returned when a system directive that takes a
// following token (environment-merge path, capability version) is the
// final token of the stream.
type DirectiveValueError struct {
	// Directive is the reserved spelling missing its value.
	Directive string
}

func (e DirectiveValueError) Error() string {
	if e.Directive == DirEnvFile {
		return fmt.Sprintf("directive %s requires a file path", e.Directive)
	}

	return fmt.Sprintf("directive %s requires a value", e.Directive)
}

// DuplicateCommandError is returned at declaration time when two children
// of one command share a name.
type DuplicateCommandError struct {
	// Name is the colliding child command name.
	Name string
}

func (e DuplicateCommandError) Error() string {
	return fmt.Sprintf("duplicate command name: %q", e.Name)
}

// HandlerError wraps an error raised inside a handler so callers can
// distinguish execution failures from parse failures.
type HandlerError struct {
	// Chain is the command chain whose handler failed.
	Chain []string
	// Err is the handler's error.
	Err error
}

func (e HandlerError) Error() string {
	return fmt.Sprintf("handler failed: %v", e.Err)
}

func (e HandlerError) Unwrap() error { return e.Err }

// Kind tags for [ErrorKind].
const (
	KindDuplicateFlag      = "duplicate_flag"
	KindUnknownFlag        = "unknown_flag"
	KindUnexpectedArgument = "unexpected_argument"
	KindMissingMandatory   = "missing_mandatory_flag"
	KindMissingValue       = "missing_flag_value"
	KindEnumViolation      = "enum_violation"
	KindTypeCoercion       = "type_coercion"
	KindNoHandler          = "no_handler"
	KindEnvFileNotFound    = "env_file_not_found"
	KindEnvFileMissingPath = "env_file_missing_path"
	KindDirectiveValue     = "missing_directive_value"
	KindReservedToken      = "reserved_token"
	KindHandler            = "handler_error"
	KindUnknown            = "error"
)

// ErrorKind maps any error produced by the engine to a stable kind tag.
// The tool bridge embeds the tag in its failure envelopes so structured
// callers can branch on failure class without parsing messages.
func ErrorKind(err error) string {
	switch {
	case errors.As(err, new(HandlerError)):
		return KindHandler
	case errors.As(err, new(arg.DuplicateError)):
		return KindDuplicateFlag
	case errors.As(err, new(arg.EnumError)):
		return KindEnumViolation
	case errors.As(err, new(arg.CoercionError)):
		return KindTypeCoercion
	case errors.As(err, new(UnknownFlagError)):
		return KindUnknownFlag
	case errors.As(err, new(UnexpectedArgError)):
		return KindUnexpectedArgument
	case errors.As(err, new(MissingArgError)):
		return KindMissingMandatory
	case errors.As(err, new(MissingValueError)):
		return KindMissingValue
	case errors.As(err, new(NoHandlerError)):
		return KindNoHandler
	case errors.As(err, new(envfile.NotFoundError)):
		return KindEnvFileNotFound
	case errors.As(err, new(ReservedTokenError)):
		return KindReservedToken
	case errors.As(err, new(DirectiveValueError)):
		var dve DirectiveValueError

		errors.As(err, &dve)

		if dve.Directive == DirEnvFile {
			return KindEnvFileMissingPath
		}

		return KindDirectiveValue
	default:
		return KindUnknown
	}
}
