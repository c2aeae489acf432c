package scope

import (
	"github.com/PrestonFrom/early-returns/pkg/early"
)

// WhenSome runs body with the present value of o. On None it returns
// without running body, which is the bare return form with the closure
// standing in for the enclosing function.
func WhenSome[T any](o early.Option[T], body func(T)) {
	v, ok := o.Get()
	if !ok {
		return
	}
	body(v)
}

// WhenOk runs body with the success value of r. On failure it returns
// without running body; the error payload is discarded.
func WhenOk[T any](r early.Result[T], body func(T)) {
	v, ok := r.Get()
	if !ok {
		return
	}
	body(v)
}

// SomeOrElse is the return-with-fallback form: body's value on the good
// path, fallback on the bad path. The compiler ties the fallback and body
// result types together through R.
func SomeOrElse[T, R any](o early.Option[T], fallback R, body func(T) R) R {
	v, ok := o.Get()
	if !ok {
		return fallback
	}
	return body(v)
}

// OkOrElse is the fallible return-with-fallback form; the error payload is
// discarded.
func OkOrElse[T, R any](r early.Result[T], fallback R, body func(T) R) R {
	v, ok := r.Get()
	if !ok {
		return fallback
	}
	return body(v)
}
