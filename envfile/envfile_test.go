package envfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ardnew/argot/pkg"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "conf.yaml", "count: 7\nname: widget\nitems:\n  - a\n  - b\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Integer representation varies by decoder; compare the literal form.
	if n, ok := got["count"]; !ok || fmt.Sprint(n) != "7" {
		t.Errorf("expected count 7, got %v (%T)", got["count"], got["count"])
	}

	if got["name"] != "widget" {
		t.Errorf("expected name widget, got %v", got["name"])
	}

	items, ok := got["items"].([]any)
	if !ok || !slices.Equal(items, []any{"a", "b"}) {
		t.Errorf("expected ordered items [a b], got %v", got["items"])
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "conf.json", `{"count": 7, "nested": {"deep": true}}`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["count"] != float64(7) {
		t.Errorf("expected count 7, got %v (%T)", got["count"], got["count"])
	}

	if got["nested.deep"] != true {
		t.Errorf("expected nested table flattened to dot key, got %v", got)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "conf.toml", "count = 7\n[server]\nhost = \"localhost\"\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["count"] != int64(7) {
		t.Errorf("expected count 7, got %v (%T)", got["count"], got["count"])
	}

	if got["server.host"] != "localhost" {
		t.Errorf("expected server.host flattened, got %v", got)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	content := `# comment
COUNT=7
export NAME="widget"
EMPTY=
QUOTED='single'

MALFORMED LINE
`

	path := writeFile(t, "conf.env", content)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		key  string
		want any
	}{
		{"COUNT", "7"},
		{"NAME", "widget"},
		{"EMPTY", ""},
		{"QUOTED", "single"},
	}

	for _, tt := range tests {
		if got[tt.key] != tt.want {
			t.Errorf("expected %s=%q, got %q", tt.key, tt.want, got[tt.key])
		}
	}

	if _, ok := got["MALFORMED LINE"]; ok {
		t.Error("malformed line should be skipped")
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if nf.Path == "" {
		t.Error("NotFoundError should carry the path")
	}

	if !errors.Is(err, pkg.ErrReadEnvFile) {
		t.Error("expected the read sentinel in the chain")
	}
}

func TestLoad_DecodeError(t *testing.T) {
	path := writeFile(t, "bad.json", `{"unterminated": `)

	if _, err := Load(path); err == nil {
		t.Error("expected decode error")
	}
}
