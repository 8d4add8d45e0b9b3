package arg

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// CoercionError is returned when a raw token cannot be converted to the
// declared kind. It wraps the built-in parse failure or the error returned
// by a custom [Func], preserving the original message.
type CoercionError struct {
	// Name is the parameter whose coercion failed.
	Name string
	// Raw is the offending token.
	Raw string
	// Err is the underlying conversion error.
	Err error
}

func (e CoercionError) Error() string {
	return fmt.Sprintf("invalid value %q for flag %q: %v", e.Raw, e.Name, e.Err)
}

func (e CoercionError) Unwrap() error { return e.Err }

// EnumError is returned when a supplied value is outside the declared
// closed set of acceptable literals.
type EnumError struct {
	// Name is the parameter whose enum was violated.
	Name string
	// Value is the offending coerced value.
	Value any
	// Allowed is the declared closed set.
	Allowed []string
}

func (e EnumError) Error() string {
	return fmt.Sprintf("value %v for flag %q is not one of [%s]",
		e.Value, e.Name, strings.Join(e.Allowed, ", "))
}

// Coerce converts the supplied raw occurrences of a into a typed value.
//
// With [Arg.Multiple] set, each occurrence is coerced independently and
// appended in first-to-last order; the result is always a []any, even for
// a single occurrence. Without Multiple, repeated occurrences overwrite
// and the last one wins.
//
// Enum membership is checked on every supplied, successfully coerced value.
// Coerce must only be called with at least one occurrence; defaults and
// omissions are resolved by the caller and are never enum-checked.
func Coerce(ctx context.Context, a *Arg, raws []string) (any, error) {
	if len(raws) == 0 {
		return nil, CoercionError{
			Name: a.Name,
			Err:  fmt.Errorf("no value supplied"),
		}
	}

	if a.Multiple {
		vals := make([]any, 0, len(raws))

		for _, raw := range raws {
			v, err := coerceOne(ctx, a, raw)
			if err != nil {
				return nil, err
			}

			vals = append(vals, v)
		}

		return vals, nil
	}

	// Last occurrence wins for non-repeatable flags.
	return coerceOne(ctx, a, raws[len(raws)-1])
}

// coerceOne converts a single raw token and applies the enum check.
func coerceOne(ctx context.Context, a *Arg, raw string) (any, error) {
	var (
		v   any
		err error
	)

	switch a.Kind {
	case KindString:
		v = raw

	case KindNumber:
		v, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, CoercionError{
				Name: a.Name,
				Raw:  raw,
				Err:  fmt.Errorf("not a number"),
			}
		}

	case KindBoolean:
		v, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, CoercionError{
				Name: a.Name,
				Raw:  raw,
				Err:  fmt.Errorf("not a boolean"),
			}
		}

	case KindFunc:
		v, err = a.Func(ctx, raw)
		if err != nil {
			return nil, CoercionError{Name: a.Name, Raw: raw, Err: err}
		}

	default:
		return nil, InvalidKindError{Value: a.Kind}
	}

	if err := checkEnum(a, v); err != nil {
		return nil, err
	}

	return v, nil
}

// checkEnum verifies that a supplied, coerced value is a member of the
// declared enum. Values are compared by their canonical string form so a
// numeric 7 matches the literal "7".
func checkEnum(a *Arg, v any) error {
	if len(a.Enum) == 0 {
		return nil
	}

	if slices.Contains(a.Enum, literal(v)) {
		return nil
	}

	return EnumError{Name: a.Name, Value: v, Allowed: a.Enum}
}

// literal renders a coerced value in its canonical literal form.
func literal(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return fmt.Sprint(v)
}
