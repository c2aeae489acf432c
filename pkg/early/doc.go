// Package early defines the two containers the divert forms operate on.
//
// - Option[T]: a present value (Some) or nothing (None)
// - Result[T]: a success value or an error (Success/Fail)
//
// Both are immutable values with a comma-ok Get view. Result carries a uuid
// id and UTC creation time so values can be traced through the lifted
// stages in seq and stream.
//
// The divert forms themselves live in subpackages:
// - guard: the six extract-or-divert guards for caller-side return/break/continue
// - scope: closure-based return forms
// - seq: iterator-lifted break/continue forms
// - stream: channel-lifted break/continue forms
package early
