// Package arg defines the flag model and type coercion engine shared by
// every invocation surface.
//
// An [Arg] declares one named, typed parameter with one or more argv
// spellings. A [Set] holds the ordered declarations of a single command
// level and enforces name and token uniqueness at declaration time.
//
// Coercion converts raw argv tokens into typed values according to the
// declared [Kind]:
//
//   - [KindString] is the identity.
//   - [KindNumber] parses a floating-point literal.
//   - [KindBoolean] parses a boolean literal; combined with [Arg.FlagOnly],
//     presence alone yields true without consuming a token.
//   - [KindFunc] invokes a user-supplied [Func] per occurrence. The Func
//     receives a [context.Context] so long-running conversions can be driven
//     by the caller; its error propagates with the original message intact.
//
// Enum membership is checked only on supplied, successfully coerced values.
// Defaults and omissions are never enum-checked.
//
// [ExprFunc] builds a [Func] from an expr-lang program, giving declarations
// a compact way to transform or validate raw tokens without writing Go.
package arg
