package arg

import (
	"fmt"
	"iter"
	"strings"
)

// Arg declares one named, typed command-line parameter.
type Arg struct {
	// Name uniquely identifies the parameter within its owning Set.
	// It is the key used in parse results and handler argument maps.
	Name string

	// Tokens are the ordered argv spellings (e.g., "--count", "-c").
	// The first token is canonical. At least one is required.
	Tokens []string

	// Kind selects the coercion applied to raw tokens.
	Kind Kind

	// Func is the conversion routine invoked per occurrence when Kind is
	// [KindFunc]. It is ignored for other kinds.
	Func Func

	// Mandatory fails the parse when no value and no default resolves.
	Mandatory bool

	// FlagOnly marks a flag whose presence alone conveys true without
	// consuming a following token.
	FlagOnly bool

	// Multiple accumulates repeated occurrences into an ordered sequence
	// instead of overwriting.
	Multiple bool

	// Enum optionally restricts supplied values to a closed set of
	// literals. Defaults and omissions are not checked.
	Enum []string

	// Default is applied only when the flag was not supplied at all.
	Default any

	// Help is a one-line description rendered in help output and tool
	// schema property descriptions.
	Help string
}

// Canon returns the canonical (first-declared) token spelling.
func (a *Arg) Canon() string {
	if len(a.Tokens) == 0 {
		return "--" + a.Name
	}

	return a.Tokens[0]
}

// DuplicateError is returned at declaration time when two parameters in
// one Set share a name or a token spelling. Duplicate detection is a
// build-time validation failure, never deferred to parse time.
type DuplicateError struct {
	// Token is the offending name or spelling.
	Token string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("duplicate flag name or token: %q", e.Token)
}

// DeclarationError is returned when a parameter declaration is malformed
// in a way other than duplication (empty name, no tokens, missing Func).
type DeclarationError struct {
	// Name is the offending parameter name, possibly empty.
	Name string
	// Reason describes the malformation.
	Reason string
}

func (e DeclarationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid flag declaration: %s", e.Reason)
	}

	return fmt.Sprintf("invalid flag declaration %q: %s", e.Name, e.Reason)
}

// Set is the ordered flag declarations of a single command level.
//
// Declaration order is preserved for help rendering and for deterministic
// left-to-right validation. Names and token spellings are unique within
// one Set; collisions fail with [DuplicateError] as the Set is built.
type Set struct {
	decls   []*Arg
	byName  map[string]*Arg
	byToken map[string]*Arg
}

// Declare builds an Arg from a kind descriptor, normalizing it through
// [ParseKind]: a [Kind] constant, a literal tag ("string", "number",
// "boolean"), or a conversion [Func] all collapse to one canonical kind.
// Remaining fields (Mandatory, Multiple, Enum, ...) are set on the result.
func Declare(name string, kind any, tokens ...string) (Arg, error) {
	k, fn, err := ParseKind(kind)
	if err != nil {
		return Arg{}, err
	}

	return Arg{Name: name, Tokens: tokens, Kind: k, Func: fn}, nil
}

// NewSet builds a Set from the given declarations.
func NewSet(decls ...Arg) (*Set, error) {
	s := &Set{
		byName:  make(map[string]*Arg),
		byToken: make(map[string]*Arg),
	}

	for _, d := range decls {
		if err := s.Add(d); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add validates and appends one declaration to the Set.
func (s *Set) Add(d Arg) error {
	if err := validate(&d); err != nil {
		return err
	}

	if _, ok := s.byName[d.Name]; ok {
		return DuplicateError{Token: d.Name}
	}

	for _, tok := range d.Tokens {
		if _, ok := s.byToken[tok]; ok {
			return DuplicateError{Token: tok}
		}
	}

	decl := &d

	s.decls = append(s.decls, decl)
	s.byName[d.Name] = decl

	for _, tok := range d.Tokens {
		s.byToken[tok] = decl
	}

	return nil
}

// validate checks a single declaration for structural errors.
func validate(d *Arg) error {
	if strings.TrimSpace(d.Name) == "" {
		return DeclarationError{Reason: "name must not be empty"}
	}

	if len(d.Tokens) == 0 {
		return DeclarationError{Name: d.Name, Reason: "at least one token spelling is required"}
	}

	for _, tok := range d.Tokens {
		if !strings.HasPrefix(tok, "-") || len(tok) < 2 {
			return DeclarationError{
				Name:   d.Name,
				Reason: fmt.Sprintf("token %q must use the - or -- prefix", tok),
			}
		}
	}

	if d.Kind == KindFunc {
		if d.Func == nil {
			return DeclarationError{Name: d.Name, Reason: "KindFunc requires a conversion Func"}
		}
	} else if _, _, err := ParseKind(d.Kind); err != nil {
		return err
	}

	if d.FlagOnly && d.Kind != KindBoolean {
		return DeclarationError{Name: d.Name, Reason: "FlagOnly requires KindBoolean"}
	}

	return nil
}

// Len returns the number of declarations in the Set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.decls)
}

// Lookup resolves a token spelling to its declaration.
func (s *Set) Lookup(token string) (*Arg, bool) {
	if s == nil {
		return nil, false
	}

	a, ok := s.byToken[token]

	return a, ok
}

// Named resolves a parameter name to its declaration.
func (s *Set) Named(name string) (*Arg, bool) {
	if s == nil {
		return nil, false
	}

	a, ok := s.byName[name]

	return a, ok
}

// All returns an iterator over the declarations in declaration order.
func (s *Set) All() iter.Seq[*Arg] {
	return func(yield func(*Arg) bool) {
		if s == nil {
			return
		}

		for _, d := range s.decls {
			if !yield(d) {
				return
			}
		}
	}
}

// Tokens returns an iterator over every declared token spelling
// in declaration order.
func (s *Set) Tokens() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}

		for _, d := range s.decls {
			for _, tok := range d.Tokens {
				if !yield(tok) {
					return
				}
			}
		}
	}
}
