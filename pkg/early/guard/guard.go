package guard

import (
	"github.com/PrestonFrom/early-returns/pkg/early"
)

// SomeOrReturn extracts the present value of o. When ok is false the caller
// returns immediately, with a fallback expression if the enclosing function
// yields one:
//
//	v, ok := guard.SomeOrReturn(lookup(key))
//	if !ok {
//		return
//	}
func SomeOrReturn[T any](o early.Option[T]) (v T, ok bool) {
	return o.Get()
}

// SomeOrBreak extracts the present value of o. When ok is false the caller
// breaks out of the enclosing loop, or a labeled outer loop:
//
//	for _, o := range opts {
//		v, ok := guard.SomeOrBreak(o)
//		if !ok {
//			break
//		}
//		use(v)
//	}
func SomeOrBreak[T any](o early.Option[T]) (v T, ok bool) {
	return o.Get()
}

// SomeOrContinue extracts the present value of o. When ok is false the
// caller continues the enclosing loop, or a labeled outer loop:
//
//	for _, o := range opts {
//		v, ok := guard.SomeOrContinue(o)
//		if !ok {
//			continue
//		}
//		use(v)
//	}
func SomeOrContinue[T any](o early.Option[T]) (v T, ok bool) {
	return o.Get()
}

// OkOrReturn extracts the success value of r. When ok is false the caller
// returns immediately. The error payload is discarded; callers that need it
// inspect r.Err() before guarding.
func OkOrReturn[T any](r early.Result[T]) (v T, ok bool) {
	return r.Get()
}

// OkOrBreak extracts the success value of r. When ok is false the caller
// breaks out of the enclosing loop, or a labeled outer loop. The error
// payload is discarded.
func OkOrBreak[T any](r early.Result[T]) (v T, ok bool) {
	return r.Get()
}

// OkOrContinue extracts the success value of r. When ok is false the caller
// continues the enclosing loop, or a labeled outer loop. The error payload
// is discarded.
func OkOrContinue[T any](r early.Result[T]) (v T, ok bool) {
	return r.Get()
}
