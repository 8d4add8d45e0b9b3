//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the argot module embedded at build time.
// It is surfaced by the debug directive and by consumers that report their
// own version information.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical module identifier used across the project.
	// It is also the fallback tool name when deriving a tool from a root
	// command that has no command chain of its own.
	Name = "argot"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Declarative command-line definition engine"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
