package arg

import (
	"context"
	"fmt"
	"strings"
)

// Func converts a raw argv token into a typed value.
//
// The context carries cancellation and deadlines from the surrounding
// parse so conversions that perform I/O can be interrupted by the caller.
// A returned error fails the parse, preserving the original message.
type Func func(ctx context.Context, raw string) (any, error)

// Kind is the closed set of value kinds an [Arg] can declare.
type Kind int

const (
	// KindInvalid is the zero value of an undeclared kind.
	KindInvalid Kind = iota

	// KindString passes the raw token through unchanged.
	KindString

	// KindNumber parses the raw token as a floating-point literal.
	KindNumber

	// KindBoolean parses the raw token as a boolean literal.
	// Combined with [Arg.FlagOnly], presence alone yields true.
	KindBoolean

	// KindFunc invokes a user-supplied [Func] per occurrence.
	KindFunc
)

// String returns the canonical literal tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindFunc:
		return "func"
	default:
		return "invalid"
	}
}

// InvalidKindError is returned at declaration time when a kind descriptor
// is not recognized. Kind resolution is never deferred to parse time.
type InvalidKindError struct {
	// Value is the unrecognized descriptor.
	Value any
}

func (e InvalidKindError) Error() string {
	return fmt.Sprintf("invalid value kind: %v", e.Value)
}

// ParseKind normalizes a kind descriptor into exactly one canonical [Kind].
//
// Accepted descriptors are a [Kind] constant, a literal tag ("string",
// "number", "boolean"/"bool"), or a [Func] (also accepted as a bare
// func(context.Context, string) (any, error)). A Func descriptor is
// returned alongside [KindFunc] so the caller can store it on the [Arg].
//
// Anything else fails with [InvalidKindError].
func ParseKind(v any) (Kind, Func, error) {
	switch d := v.(type) {
	case Kind:
		if d <= KindInvalid || d > KindFunc {
			return KindInvalid, nil, InvalidKindError{Value: v}
		}

		if d == KindFunc {
			// A bare KindFunc tag carries no conversion routine.
			return KindInvalid, nil, InvalidKindError{Value: v}
		}

		return d, nil, nil

	case string:
		switch strings.ToLower(strings.TrimSpace(d)) {
		case "string", "str":
			return KindString, nil, nil
		case "number", "num", "float":
			return KindNumber, nil, nil
		case "boolean", "bool":
			return KindBoolean, nil, nil
		default:
			return KindInvalid, nil, InvalidKindError{Value: v}
		}

	case Func:
		if d == nil {
			return KindInvalid, nil, InvalidKindError{Value: v}
		}

		return KindFunc, d, nil

	case func(context.Context, string) (any, error):
		if d == nil {
			return KindInvalid, nil, InvalidKindError{Value: v}
		}

		return KindFunc, Func(d), nil

	default:
		return KindInvalid, nil, InvalidKindError{Value: v}
	}
}
