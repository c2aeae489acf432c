package seq

import (
	"iter"

	"github.com/PrestonFrom/early-returns/pkg/early"
)

// Of yields the given items in order.
func Of[T any](items ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// WhileSome yields the present values of src and stops at the first None.
// The source is consumed lazily and is not pulled past the first None.
func WhileSome[T any](src iter.Seq[early.Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range src {
			v, ok := o.Get()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SkipNone yields the present values of src, dropping every None.
func SkipNone[T any](src iter.Seq[early.Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range src {
			v, ok := o.Get()
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// WhileOk yields the success values of src and stops at the first failure.
// The failure's error payload is discarded.
func WhileOk[T any](src iter.Seq[early.Result[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := range src {
			v, ok := r.Get()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SkipFail yields the success values of src, dropping every failure. The
// error payloads are discarded.
func SkipFail[T any](src iter.Seq[early.Result[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := range src {
			v, ok := r.Get()
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
