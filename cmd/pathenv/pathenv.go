package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ardnew/mung"
	"github.com/goccy/go-json"

	"github.com/ardnew/argot/arg"
	"github.com/ardnew/argot/cli"
	"github.com/ardnew/argot/pkg"
	"github.com/ardnew/argot/tool"
)

// run parses and executes one invocation, writing any payload to w.
func run(ctx context.Context, w io.Writer, argv []string) error {
	root, err := newRoot()
	if err != nil {
		return err
	}

	res, err := root.Run(ctx, argv)
	if err != nil {
		return err
	}

	// Honor a capability override before any tool derivation below.
	tool.ApplySystem(res.System)

	if res.Response != nil {
		fmt.Fprintln(w, res.Response)
	}

	return nil
}

// newRoot declares the pathenv command tree.
func newRoot() (*cli.Command, error) {
	add, err := cli.New("add",
		cli.WithHelp("prepend directories to the variable"),
		cli.WithArgs(
			arg.Arg{
				Name:      "dir",
				Tokens:    []string{"--dir", "-d"},
				Kind:      arg.KindString,
				Mandatory: true,
				Multiple:  true,
				Help:      "directory to prepend (repeatable)",
			},
			arg.Arg{
				Name:     "if-exists",
				Tokens:   []string{"--if-exists"},
				Kind:     arg.KindBoolean,
				FlagOnly: true,
				Default:  false,
				Help:     "skip directories that do not exist",
			},
		),
		cli.WithHandler(addHandler),
		cli.WithOutputSchema(map[string]any{"type": "string"}),
	)
	if err != nil {
		return nil, err
	}

	list, err := cli.New("list",
		cli.WithHelp("print the variable's entries, one per line"),
		cli.WithHandler(listHandler),
		cli.WithOutputSchema(map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		}),
	)
	if err != nil {
		return nil, err
	}

	tools, err := cli.New("tools",
		cli.WithHelp("print the derived tool definitions as JSON"),
		cli.WithHandler(toolsHandler),
	)
	if err != nil {
		return nil, err
	}

	varFlag, err := arg.Declare("var", "string", "--var")
	if err != nil {
		return nil, err
	}

	varFlag.Default = "PATH"
	varFlag.Help = "variable to operate on"

	return cli.New("pathenv",
		cli.WithHelp("compose PATH-like environment variables"),
		cli.WithArgs(varFlag),
		cli.WithCommand(add),
		cli.WithCommand(list),
		cli.WithCommand(tools),
	)
}

// variable resolves the target variable name from the parent frame.
func variable(inv *cli.Invocation) string {
	if v, ok := inv.Parents.Lookup("var"); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}

	return "PATH"
}

// addHandler prepends the given directories to the variable and returns
// the composed VAR=value assignment.
func addHandler(_ context.Context, inv *cli.Invocation) (any, error) {
	name := variable(inv)

	var dirs []string

	if vals, ok := inv.Args["dir"].([]any); ok {
		for _, v := range vals {
			dirs = append(dirs, fmt.Sprint(v))
		}
	}

	var value string

	if inv.Args["if-exists"] == true {
		value = mung.Make(
			mung.WithSubjectItems(os.Getenv(name)),
			mung.WithDelim(string(os.PathListSeparator)),
			mung.WithPrefixItems(dirs...),
			mung.WithFilter(dirExists),
		).String()
	} else {
		value = mung.Make(
			mung.WithSubjectItems(os.Getenv(name)),
			mung.WithDelim(string(os.PathListSeparator)),
			mung.WithPrefixItems(dirs...),
		).String()
	}

	return fmt.Sprintf("%s=%s", name, value), nil
}

// listHandler splits the variable's current value into its entries.
func listHandler(_ context.Context, inv *cli.Invocation) (any, error) {
	name := variable(inv)

	value := os.Getenv(name)
	if value == "" {
		return "", nil
	}

	entries := strings.Split(value, string(os.PathListSeparator))

	return strings.Join(entries, "\n"), nil
}

// toolsHandler derives the tool definitions for this tree and renders
// them as JSON for structured callers.
func toolsHandler(_ context.Context, _ *cli.Invocation) (any, error) {
	root, err := newRoot()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(
		tool.Derive(root, tool.WithAppName("pathenv")), "", "  ")
	if err != nil {
		return nil, pkg.ErrJSONMarshal.Wrap(err)
	}

	return string(data), nil
}

// dirExists reports whether path names an existing directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
