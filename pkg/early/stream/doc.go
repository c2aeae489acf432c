// Package stream lifts the break and continue forms over channels with
// context cancellation. WhileSome/WhileOk stop consuming at the first bad
// variant (break); SkipNone/SkipFail drop bad variants and keep going
// (continue), optionally fanned out across several workers since dropping
// does not depend on ordering.
//
// Emit and Collect are the source and sink helpers. Every stage selects on
// ctx.Done and closes its output channel when it stops.
package stream
