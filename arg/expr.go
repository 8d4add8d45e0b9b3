package arg

import (
	"context"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/argot/pkg"
)

// ExprFunc compiles an expr-lang program into a coercion [Func].
//
// The program is compiled once, at declaration time, against an
// environment exposing the raw token as "value". Compilation errors are
// reported immediately so a malformed program never reaches parse time.
//
// The returned Func runs the compiled program per occurrence and yields
// its result as the coerced value. A runtime failure (including a thrown
// predicate) propagates as the coercion error.
//
//	count, _ := arg.ExprFunc(`int(value) * 2`)
//	upper, _ := arg.ExprFunc(`upper(value)`)
func ExprFunc(src string) (Func, error) {
	program, err := expr.Compile(src, expr.Env(exprEnv(nil)))
	if err != nil {
		return nil, pkg.ErrCompileExpr.Wrap(err)
	}

	return func(_ context.Context, raw string) (any, error) {
		return vm.Run(program, exprEnv(&raw))
	}, nil
}

// exprEnv builds the evaluation environment for a coercion program.
// A nil raw pointer produces the typing environment used at compile time.
func exprEnv(raw *string) map[string]any {
	value := ""
	if raw != nil {
		value = *raw
	}

	return map[string]any{
		"value": value,
	}
}
