package arg

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestCoerce_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		decl    Arg
		raws    []string
		want    any
		wantErr bool
	}{
		{
			name: "string identity",
			decl: Arg{Name: "s", Tokens: []string{"--s"}, Kind: KindString},
			raws: []string{"hello"},
			want: "hello",
		},
		{
			name: "number parses float",
			decl: Arg{Name: "n", Tokens: []string{"--n"}, Kind: KindNumber},
			raws: []string{"42"},
			want: float64(42),
		},
		{
			name: "number fractional",
			decl: Arg{Name: "n", Tokens: []string{"--n"}, Kind: KindNumber},
			raws: []string{"3.5"},
			want: float64(3.5),
		},
		{
			name:    "number rejects non-numeric",
			decl:    Arg{Name: "n", Tokens: []string{"--n"}, Kind: KindNumber},
			raws:    []string{"abc"},
			wantErr: true,
		},
		{
			name: "boolean true",
			decl: Arg{Name: "b", Tokens: []string{"--b"}, Kind: KindBoolean},
			raws: []string{"true"},
			want: true,
		},
		{
			name:    "boolean rejects junk",
			decl:    Arg{Name: "b", Tokens: []string{"--b"}, Kind: KindBoolean},
			raws:    []string{"maybe"},
			wantErr: true,
		},
		{
			name: "last occurrence wins without Multiple",
			decl: Arg{Name: "s", Tokens: []string{"--s"}, Kind: KindString},
			raws: []string{"first", "second"},
			want: "second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(t.Context(), &tt.decl, tt.raws)
			if tt.wantErr {
				var ce CoercionError
				if !errors.As(err, &ce) {
					t.Fatalf("expected CoercionError, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)",
					tt.want, tt.want, got, got)
			}
		})
	}
}

func TestCoerce_MultiplePreservesOrder(t *testing.T) {
	decl := Arg{
		Name:     "item",
		Tokens:   []string{"--item"},
		Kind:     KindString,
		Multiple: true,
	}

	got, err := Coerce(t.Context(), &decl, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vals, ok := got.([]any)
	if !ok {
		t.Fatalf("expected []any, got %T", got)
	}

	if !slices.Equal(vals, []any{"a", "b", "c"}) {
		t.Errorf("expected [a b c], got %v", vals)
	}
}

func TestCoerce_MultipleSingleOccurrenceIsSequence(t *testing.T) {
	decl := Arg{
		Name:     "item",
		Tokens:   []string{"--item"},
		Kind:     KindString,
		Multiple: true,
	}

	got, err := Coerce(t.Context(), &decl, []string{"only"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vals, ok := got.([]any); !ok || len(vals) != 1 {
		t.Errorf("expected single-element sequence, got %v (%T)", got, got)
	}
}

func TestCoerce_CustomFunc(t *testing.T) {
	upper := func(_ context.Context, raw string) (any, error) {
		return strings.ToUpper(raw), nil
	}

	decl := Arg{
		Name:   "word",
		Tokens: []string{"--word"},
		Kind:   KindFunc,
		Func:   upper,
	}

	got, err := Coerce(t.Context(), &decl, []string{"abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "ABC" {
		t.Errorf("expected ABC, got %v", got)
	}
}

func TestCoerce_CustomFuncErrorPreservesMessage(t *testing.T) {
	boom := errors.New("not a valid widget")
	reject := func(_ context.Context, _ string) (any, error) {
		return nil, boom
	}

	decl := Arg{
		Name:   "widget",
		Tokens: []string{"--widget"},
		Kind:   KindFunc,
		Func:   reject,
	}

	_, err := Coerce(t.Context(), &decl, []string{"x"})
	if err == nil {
		t.Fatal("expected error")
	}

	if !errors.Is(err, boom) {
		t.Error("original error should survive wrapping")
	}

	if !strings.Contains(err.Error(), "not a valid widget") {
		t.Errorf("original message lost: %v", err)
	}
}

func TestCoerce_Enum(t *testing.T) {
	tests := []struct {
		name    string
		decl    Arg
		raws    []string
		wantErr bool
	}{
		{
			name: "member accepted",
			decl: Arg{
				Name:   "mode",
				Tokens: []string{"--mode"},
				Kind:   KindString,
				Enum:   []string{"fast", "slow"},
			},
			raws: []string{"fast"},
		},
		{
			name: "non-member rejected",
			decl: Arg{
				Name:   "mode",
				Tokens: []string{"--mode"},
				Kind:   KindString,
				Enum:   []string{"fast", "slow"},
			},
			raws:    []string{"medium"},
			wantErr: true,
		},
		{
			name: "numeric member compared by literal form",
			decl: Arg{
				Name:   "level",
				Tokens: []string{"--level"},
				Kind:   KindNumber,
				Enum:   []string{"1", "2", "3"},
			},
			raws: []string{"2"},
		},
		{
			name: "every occurrence of a repeatable flag is checked",
			decl: Arg{
				Name:     "mode",
				Tokens:   []string{"--mode"},
				Kind:     KindString,
				Multiple: true,
				Enum:     []string{"fast", "slow"},
			},
			raws:    []string{"fast", "medium"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Coerce(t.Context(), &tt.decl, tt.raws)
			if tt.wantErr {
				var ee EnumError
				if !errors.As(err, &ee) {
					t.Fatalf("expected EnumError, got %v", err)
				}

				if len(ee.Allowed) == 0 {
					t.Error("EnumError should carry the allowed set")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCoerce_ContextReachesFunc(t *testing.T) {
	type key struct{}

	ctx := context.WithValue(t.Context(), key{}, "present")

	decl := Arg{
		Name:   "sensor",
		Tokens: []string{"--sensor"},
		Kind:   KindFunc,
		Func: func(ctx context.Context, raw string) (any, error) {
			if ctx.Value(key{}) == nil {
				return nil, fmt.Errorf("context value missing")
			}

			return raw, nil
		},
	}

	if _, err := Coerce(ctx, &decl, []string{"x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
