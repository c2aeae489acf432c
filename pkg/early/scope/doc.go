// Package scope provides the closure-based return forms. Where guard hands
// the divert decision back to the caller, scope keeps it inside the call:
// the closure is the enclosing function, so a bad variant simply means the
// closure never runs.
//
// - WhenSome/WhenOk: bare return (unit value)
// - SomeOrElse/OkOrElse: return with a typed fallback value
//
// Break and continue have no closure rendition here; for loop-shaped
// diverts see guard (caller-side statements) or the lifted forms in seq
// and stream.
package scope
