package pkg

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "argot"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestVersion(t *testing.T) {
	if strings.TrimSpace(Version) == "" {
		t.Error("Expected embedded Version to be non-empty")
	}
}

func TestMakeError(t *testing.T) {
	tests := []struct {
		name string
		errs []error
		want string
	}{
		{
			name: "nil yields nil",
			errs: nil,
			want: "",
		},
		{
			name: "single error",
			errs: []error{errors.New("boom")},
			want: "boom",
		},
		{
			name: "chain joins innermost first",
			errs: []error{errors.New("inner"), errors.New("outer")},
			want: "inner: outer",
		},
		{
			name: "nil entries skipped",
			errs: []error{nil, errors.New("only")},
			want: "only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MakeError(tt.errs...)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}

				return
			}

			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestErrorWrap(t *testing.T) {
	base := MakeErrorf("read failed")
	wrapped := base.Wrapf("path %q", "/tmp/x")

	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match its sentinel with errors.Is")
	}

	want := `read failed: path "/tmp/x"`
	if wrapped.Error() != want {
		t.Errorf("expected %q, got %q", want, wrapped.Error())
	}
}

func TestUnwrapErrors(t *testing.T) {
	inner := errors.New("inner")
	mid := fmt.Errorf("mid: %w", inner)

	chain := UnwrapErrors(mid)
	if len(chain) != 2 {
		t.Fatalf("expected 2 errors in chain, got %d", len(chain))
	}

	if chain[0] != inner {
		t.Error("expected innermost error first")
	}
}

func TestAnyValues(t *testing.T) {
	got := slices.Collect(AnyValues("a", "b", "c"))

	want := []any{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
