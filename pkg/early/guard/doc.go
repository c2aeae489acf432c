// Package guard contains the six extract-or-divert forms. Each takes an
// already-evaluated container value and hands back the comma-ok pair; the
// caller performs the divert with its own return, break, or continue
// statement, optionally labeled, optionally `return fallback`.
//
// Forms:
// - SomeOrReturn/SomeOrBreak/SomeOrContinue: Option[T]
// - OkOrReturn/OkOrBreak/OkOrContinue: Result[T]
//
// Because the argument is evaluated once at the call site and the divert
// statement sits in caller code, single evaluation, label resolution, and
// fallback typing are all enforced by the compiler at the call site. A
// break or continue outside a loop, an unknown label, or a fallback that
// does not match the enclosing function's result type will not compile.
//
// The fallible forms discard the error payload on the bad path; inspect
// Result.Err() before guarding when the error matters.
package guard
