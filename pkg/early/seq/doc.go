// Package seq lifts the break and continue forms over iter.Seq. A range
// over the adapted sequence behaves exactly like a loop guarded at each
// step: WhileSome/WhileOk stop at the first bad variant (break), while
// SkipNone/SkipFail drop bad variants and keep going (continue).
//
// Sources are consumed lazily; a break-form never pulls the source past
// the element that stopped it.
package seq
