package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/argot/arg"
	"github.com/ardnew/argot/pkg"
)

//nolint:gochecknoglobals
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	tokenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Help renders usage for the command: its flags (spellings, kind,
// defaults, enums, mandatory markers) and sub-commands, in declaration
// order. Styling degrades to plain text on non-terminal writers.
func (c *Command) Help() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(c.usageLine()))
	sb.WriteString("\n")

	if c.help != "" {
		sb.WriteString("\n")
		sb.WriteString(c.help)
		sb.WriteString("\n")
	}

	if len(c.order) > 0 {
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render("Commands:"))
		sb.WriteString("\n")

		for child := range c.Children() {
			fmt.Fprintf(&sb, "  %s  %s\n",
				commandStyle.Render(child.name), child.help)
		}
	}

	if c.args.Len() > 0 {
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render("Flags:"))
		sb.WriteString("\n")

		for a := range c.args.All() {
			sb.WriteString(renderFlag(a))
		}
	}

	return sb.String()
}

// usageLine builds the one-line synopsis.
func (c *Command) usageLine() string {
	parts := []string{"Usage:", c.name}

	if c.args.Len() > 0 {
		parts = append(parts, "[flags]")
	}

	if len(c.order) > 0 {
		parts = append(parts, "<command>")
	}

	if c.positional {
		parts = append(parts, "[args...]")
	}

	return strings.Join(parts, " ")
}

// renderFlag formats one flag declaration for help output.
func renderFlag(a *arg.Arg) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "  %s %s",
		tokenStyle.Render(strings.Join(a.Tokens, ", ")),
		hintStyle.Render("<"+a.Kind.String()+">"))

	if a.Help != "" {
		sb.WriteString("  ")
		sb.WriteString(a.Help)
	}

	var qualifiers []string

	if a.Mandatory {
		qualifiers = append(qualifiers, "required")
	}

	if a.Multiple {
		qualifiers = append(qualifiers, "repeatable")
	}

	if len(a.Enum) > 0 {
		qualifiers = append(qualifiers,
			"one of "+strings.Join(a.Enum, "|"))
	}

	if a.Default != nil {
		qualifiers = append(qualifiers, fmt.Sprintf("default %v", a.Default))
	}

	if len(qualifiers) > 0 {
		sb.WriteString(" ")
		sb.WriteString(hintStyle.Render("(" + strings.Join(qualifiers, ", ") + ")"))
	}

	sb.WriteString("\n")

	return sb.String()
}

// debugReport renders the introspection payload for the debug directive:
// engine version, active system directives, and the command tree summary.
func (c *Command) debugReport(sys *System) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", pkg.Name, strings.TrimSpace(pkg.Version))

	for _, a := range pkg.Author {
		fmt.Fprintf(&sb, "author: %s <%s>\n", a.Name, a.Email)
	}

	fmt.Fprintf(&sb, "command: %s\n", c.name)

	if sys.Present() {
		fmt.Fprintf(&sb, "system: debug=%t fuzzy=%t", sys.Debug, sys.Fuzzy)

		if sys.EnvFile != "" {
			fmt.Fprintf(&sb, " env-file=%s", sys.EnvFile)
		}

		if sys.Capability != "" {
			fmt.Fprintf(&sb, " capability=%s", sys.Capability)
		}

		sb.WriteString("\n")
	}

	c.writeTree(&sb, 0)

	return sb.String()
}

// writeTree appends an indented summary of the command tree.
func (c *Command) writeTree(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	handler := ""
	if c.handler != nil {
		handler = " *"
	}

	fmt.Fprintf(sb, "%s%s (%d flags)%s\n",
		indent, c.name, c.args.Len(), handler)

	for child := range c.Children() {
		child.writeTree(sb, depth+1)
	}
}
