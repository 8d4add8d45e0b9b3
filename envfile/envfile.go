// Package envfile loads configuration files for the environment-merge
// directive and normalizes them to a flat key/value map.
//
// Supported formats are selected by file extension: JSON (.json), YAML
// (.yaml/.yml), TOML (.toml), and .env-style KEY=VALUE text for anything
// else. Nested tables flatten to dot-joined keys; array values normalize
// to an ordered []any.
//
// The resulting map is merged into the flag-default layer by the parse
// engine: a file value applies only when the flag was not supplied on the
// command line and declares no compiled default.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/argot/pkg"
)

// NotFoundError is returned when the environment-merge file is missing
// or unreadable.
type NotFoundError struct {
	// Path is the requested file path.
	Path string
	// Err is the underlying I/O error.
	Err error
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("environment file %q not readable: %v", e.Path, e.Err)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// Load reads and decodes the file at path, returning its key/value pairs
// as a flat map.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NotFoundError{Path: path, Err: pkg.ErrReadEnvFile.Wrap(err)}
	}

	var nested map[string]any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &nested); err != nil {
			return nil, pkg.ErrDecodeEnvFile.Wrapf("json").Wrap(err)
		}

	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, pkg.ErrDecodeEnvFile.Wrapf("yaml").Wrap(err)
		}

	case ".toml":
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, pkg.ErrDecodeEnvFile.Wrapf("toml").Wrap(err)
		}

	default:
		nested = parseDotEnv(string(data))
	}

	flat := make(map[string]any, len(nested))
	flatten("", nested, flat)

	return flat, nil
}

// flatten collapses nested tables into dot-joined keys. Arrays are kept
// as ordered []any values; scalars pass through as decoded.
func flatten(prefix string, src map[string]any, dst map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if table, ok := v.(map[string]any); ok {
			flatten(key, table, dst)

			continue
		}

		dst[key] = v
	}
}

// parseDotEnv decodes .env-style KEY=VALUE lines. Blank lines and lines
// starting with # are skipped; values may be single- or double-quoted.
// A repeated key keeps the last value.
func parseDotEnv(data string) map[string]any {
	out := make(map[string]any)

	for line := range strings.Lines(data) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.TrimPrefix(line, "export ")

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		out[key] = unquote(strings.TrimSpace(val))
	}

	return out
}

// unquote strips one level of matched single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') ||
			(s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}

	return s
}
