package cli

import (
	"errors"
	"slices"
	"testing"

	"github.com/ardnew/argot/arg"
	"github.com/ardnew/argot/pkg"
)

func TestNew_DeclarationErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{
			name: "duplicate flag token",
			opts: []Option{WithArgs(
				arg.Arg{Name: "a", Tokens: []string{"--same"}, Kind: arg.KindString},
				arg.Arg{Name: "b", Tokens: []string{"--same"}, Kind: arg.KindString},
			)},
			want: arg.DuplicateError{Token: "--same"},
		},
		{
			name: "reserved directive namespace",
			opts: []Option{WithArgs(
				arg.Arg{Name: "s", Tokens: []string{"--s-mine"}, Kind: arg.KindString},
			)},
			want: ReservedTokenError{Token: "--s-mine"},
		},
		{
			name: "reserved help spelling",
			opts: []Option{WithArgs(
				arg.Arg{Name: "h", Tokens: []string{"-h"}, Kind: arg.KindBoolean},
			)},
			want: ReservedTokenError{Token: "-h"},
		},
		{
			name: "duplicate child name",
			opts: []Option{
				WithCommand(MustNew("twin")),
				WithCommand(MustNew("twin")),
			},
			want: DuplicateCommandError{Name: "twin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("app", tt.opts...)
			if err == nil {
				t.Fatal("expected declaration error")
			}

			if !errors.Is(err, tt.want) && err.Error() != tt.want.Error() {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNew_EmptyName(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("expected error for empty command name")
	}
}

func TestCommand_SealedMutationFails(t *testing.T) {
	child := MustNew("sub")
	root := MustNew("app", WithCommand(child))

	if _, err := root.Parse(t.Context(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := root.AddArgs(arg.Arg{
		Name: "late", Tokens: []string{"--late"}, Kind: arg.KindString,
	})
	if !errors.Is(err, pkg.ErrSealedCommand) {
		t.Errorf("expected ErrSealedCommand from root, got %v", err)
	}

	// Sealing is tracked at the root, so descendants are frozen too.
	err = child.AddCommand(MustNew("grandchild"))
	if !errors.Is(err, pkg.ErrSealedCommand) {
		t.Errorf("expected ErrSealedCommand from child, got %v", err)
	}
}

func TestCommand_ChildrenInAttachmentOrder(t *testing.T) {
	root := MustNew("app",
		WithCommand(MustNew("zeta")),
		WithCommand(MustNew("alpha")),
		WithCommand(MustNew("mid")),
	)

	var names []string
	for child := range root.Children() {
		names = append(names, child.Name())
	}

	if !slices.Equal(names, []string{"zeta", "alpha", "mid"}) {
		t.Errorf("expected attachment order, got %v", names)
	}
}

func TestCommand_Lookup(t *testing.T) {
	leaf := MustNew("leaf")
	root := MustNew("app", WithCommand(MustNew("mid", WithCommand(leaf))))

	got, ok := root.Lookup("mid", "leaf")
	if !ok || got != leaf {
		t.Errorf("expected leaf via chain, got %v (%t)", got, ok)
	}

	if _, ok := root.Lookup("mid", "nope"); ok {
		t.Error("expected lookup miss for unknown chain")
	}

	if got, ok := root.Lookup(); !ok || got != root {
		t.Error("expected empty chain to resolve the root itself")
	}
}

func TestMustNew_PanicsOnDeclarationError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustNew to panic")
		}
	}()

	MustNew("app", WithArgs(
		arg.Arg{Name: "h", Tokens: []string{"--help"}, Kind: arg.KindBoolean},
	))
}
