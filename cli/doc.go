// Package cli implements the command tree, parse engine, system directive
// layer, and execution router of argot.
//
// # Command trees
//
// A [Command] owns a flag set ([github.com/ardnew/argot/arg.Set]), an
// optional [Handler], and named child commands, recursively:
//
//	child, _ := cli.New("child",
//		cli.WithArgs(arg.Arg{
//			Name: "file", Tokens: []string{"--file"},
//			Kind: arg.KindString, Mandatory: true,
//		}),
//		cli.WithHandler(handleChild),
//	)
//	root, _ := cli.New("app", cli.WithCommand(child))
//
// Declaration errors (duplicate names or tokens, reserved spellings,
// malformed kinds) are reported immediately by New and the With options,
// never deferred to parse time. The tree seals itself on first parse;
// later mutation attempts fail.
//
// # Grammar
//
//	prog [global-flags] [subcommand [sub-flags]]*
//
// A flag token is recognized by its leading "-". Bare tokens are matched
// against the current command's children; the first bare token matching no
// child ends path resolution and is treated as positional overflow (opt-in
// via [WithPositional]) or fails. A token immediately following a
// value-taking flag is always consumed as that flag's value, even when it
// spells a child command name.
//
// Parent flags are resolved before descent; each handler receives its own
// argument map plus a separate read-only chain of ancestor frames, so
// same-named flags at different levels never collide.
//
// # System directives
//
// A fixed, reserved vocabulary is recognized anywhere in the token stream
// and removed before ordinary flag parsing:
//
//	--s-debug               introspection dump, early exit
//	--s-fuzzy               dry-run: suppress mandatory checks and handler
//	--s-with-env <path>     merge a config file into the default layer
//	--s-capability <ver>    record a capability version override
//	--help, -h              rendered help, early exit
//
// Reserved spellings are rejected at flag declaration time, so a user flag
// can never shadow a directive.
//
// # Modes
//
// [Command.Parse] and [Command.Run] return errors (non-throwing mode);
// [Command.MustParse] and [Command.MustRun] panic (throwing mode).
package cli
